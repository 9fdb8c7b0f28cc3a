package interpreter

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"enumstudy/evaluator-go/pkg/ast"
)

// DomainPolicy selects what f does with a non-positive argument.
type DomainPolicy int

const (
	// DomainFallback evaluates f(v) for v <= 0 to 0.
	DomainFallback DomainPolicy = iota
	// DomainStrict reports a *DomainError for v <= 0.
	DomainStrict
)

func (p DomainPolicy) String() string {
	switch p {
	case DomainFallback:
		return "fallback"
	case DomainStrict:
		return "strict"
	default:
		return fmt.Sprintf("unknown_domain_policy_%d", int(p))
	}
}

// DefaultMaxDepth is the nesting limit used by DefaultConfig.
const DefaultMaxDepth = 10000

// Config tunes an Interpreter. The zero value is usable: fallback policy,
// DefaultMaxDepth nesting, no memoization, no logging.
type Config struct {
	Domain DomainPolicy
	// MaxDepth caps evaluation nesting. 0 selects DefaultMaxDepth and a
	// negative value disables the guard.
	MaxDepth int
	// MemoSize is the number of f results kept; 0 disables memoization.
	MemoSize int
	Logger   *zerolog.Logger
}

// DefaultConfig mirrors the behaviour of the original playground with a
// stack guard.
func DefaultConfig() Config {
	return Config{Domain: DomainFallback, MaxDepth: DefaultMaxDepth}
}

// Interpreter evaluates ast.Expression trees to int64. It is not safe for
// concurrent use.
type Interpreter struct {
	domain   DomainPolicy
	maxDepth int
	memo     *lru.Cache[int64, int64]
	logger   zerolog.Logger

	depth  int
	visits uint64
}

// New returns an interpreter configured with DefaultConfig.
func New() *Interpreter {
	interp, err := NewWithConfig(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return interp
}

// NewWithConfig validates cfg and builds an interpreter from it.
func NewWithConfig(cfg Config) (*Interpreter, error) {
	switch cfg.Domain {
	case DomainFallback, DomainStrict:
	default:
		return nil, fmt.Errorf("interpreter: unsupported domain policy %s", cfg.Domain)
	}
	if cfg.MemoSize < 0 {
		return nil, fmt.Errorf("interpreter: memo size must not be negative (got %d)", cfg.MemoSize)
	}
	interp := &Interpreter{
		domain:   cfg.Domain,
		maxDepth: cfg.MaxDepth,
		logger:   zerolog.Nop(),
	}
	if interp.maxDepth == 0 {
		interp.maxDepth = DefaultMaxDepth
	}
	if cfg.Logger != nil {
		interp.logger = *cfg.Logger
	}
	if cfg.MemoSize > 0 {
		cache, err := lru.New[int64, int64](cfg.MemoSize)
		if err != nil {
			return nil, fmt.Errorf("interpreter: memo cache: %w", err)
		}
		interp.memo = cache
	}
	return interp, nil
}

// Evaluate reduces expr to a single integer. The tree is only read.
func (i *Interpreter) Evaluate(expr ast.Expression) (int64, error) {
	return i.evaluateExpression(expr)
}

// Visits reports how many nodes were evaluated since construction or the
// last ResetStats. Nodes synthesised by the f rewrite are included.
func (i *Interpreter) Visits() uint64 {
	return i.visits
}

// ResetStats clears the visit counter. Memoized results are kept.
func (i *Interpreter) ResetStats() {
	i.visits = 0
}

// Memoized reports whether f results are cached.
func (i *Interpreter) Memoized() bool {
	return i.memo != nil
}

// Policy returns the active domain policy.
func (i *Interpreter) Policy() DomainPolicy {
	return i.domain
}
