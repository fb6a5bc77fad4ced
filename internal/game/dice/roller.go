package dice

import "go.uber.org/zap"

var (
	exprD6  = MustParse("d6")
	exprD20 = MustParse("d20")
	expr3d6 = MustParse("3d6")
)

// Roller wraps a Source with the game's named draws and logs every draw at
// debug level.
//
// A Roller is owned by exactly one session; the order of calls is the order
// of draws from the Source.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that draws from src and logs to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	if src == nil {
		panic("dice: NewLoggedRoller called with nil source")
	}
	if logger == nil {
		panic("dice: NewLoggedRoller called with nil logger")
	}
	return &Roller{src: src, logger: logger}
}

// RollRange returns a uniform int in [0, max) using exactly one draw.
//
// Precondition: max > 0.
func (r *Roller) RollRange(max int) int {
	v := r.src.Intn(max)
	r.logger.Debug("dice range", zap.Int("max", max), zap.Int("value", v))
	return v
}

// Chance reports whether a one-in-n draw succeeds (RollRange(n) == 0).
//
// Precondition: n > 0.
func (r *Roller) Chance(n int) bool {
	return r.RollRange(n) == 0
}

// D6 returns a value in [1, 6].
func (r *Roller) D6() int {
	return r.Roll(exprD6).Total()
}

// D20 returns a value in [1, 20].
func (r *Roller) D20() int {
	return r.Roll(exprD20).Total()
}

// Roll3d6 returns the sum of three d6 draws, in [3, 18].
func (r *Roller) Roll3d6() int {
	return r.Roll(expr3d6).Total()
}

// Roll evaluates expr and logs the result at debug level.
//
// Precondition: expr must come from Parse.
func (r *Roller) Roll(expr Expression) RollResult {
	result := Roll(expr, r.src)
	r.logger.Debug("dice roll",
		zap.String("expression", result.Expression),
		zap.Ints("dice", result.Dice),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total()),
	)
	return result
}

// RollExpr parses expr and rolls it, logging the result.
//
// Postcondition: Returns a RollResult or a parse error.
func (r *Roller) RollExpr(expr string) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return r.Roll(e), nil
}
