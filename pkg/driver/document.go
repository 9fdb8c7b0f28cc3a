package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"enumstudy/evaluator-go/pkg/ast"
	"enumstudy/evaluator-go/pkg/interpreter"
)

// Document is a parsed expression document: evaluator settings plus an
// ordered list of named expressions.
type Document struct {
	Path        string
	Settings    Settings
	Expressions []*NamedExpression
}

// Settings configure the interpreter that evaluates a document.
type Settings struct {
	Domain   interpreter.DomainPolicy
	MemoSize int
	// MaxDepth follows interpreter.Config: 0 is the default limit, negative
	// disables the guard.
	MaxDepth int
	LogLevel zerolog.Level
}

// NamedExpression is one entry of the expressions list.
type NamedExpression struct {
	Name       string
	Expression ast.Expression
	// Expected is nil when the document states no expectation.
	Expected *int64
}

// ValidationError aggregates document validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "document: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("document validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadDocument parses an expression document from disk.
func LoadDocument(path string) (*Document, error) {
	if path == "" {
		return nil, fmt.Errorf("document: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("document: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("document: open %s: %w", absPath, err)
	}
	defer file.Close()
	return ParseDocument(file, absPath)
}

// ParseDocument decodes and validates a document read from r. name is used
// in error messages and recorded as the document path.
func ParseDocument(r io.Reader, name string) (*Document, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw documentFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("document: %s is empty", name)
		}
		return nil, fmt.Errorf("document: parse %s: %w", name, err)
	}

	doc, issues := raw.toDocument(name)
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	return doc, nil
}

// Find looks up an expression by name, ignoring case and surrounding space.
func (d *Document) Find(name string) (*NamedExpression, bool) {
	if d == nil {
		return nil, false
	}
	name = strings.TrimSpace(name)
	for _, entry := range d.Expressions {
		if strings.EqualFold(entry.Name, name) {
			return entry, true
		}
	}
	return nil, false
}

// InterpreterConfig maps the settings onto an interpreter configuration.
func (d *Document) InterpreterConfig(logger *zerolog.Logger) interpreter.Config {
	return interpreter.Config{
		Domain:   d.Settings.Domain,
		MaxDepth: d.Settings.MaxDepth,
		MemoSize: d.Settings.MemoSize,
		Logger:   logger,
	}
}

type documentFile struct {
	Settings    settingsYAML          `yaml:"settings"`
	Expressions []expressionEntryYAML `yaml:"expressions"`
}

type settingsYAML struct {
	Domain   string `yaml:"domain"`
	MemoSize *int   `yaml:"memo_size"`
	MaxDepth *int   `yaml:"max_depth"`
	LogLevel string `yaml:"log_level"`
}

type expressionEntryYAML struct {
	Name   string         `yaml:"name"`
	Expr   expressionYAML `yaml:"expr"`
	Expect *int64         `yaml:"expect"`
}

func (df documentFile) toDocument(path string) (*Document, []string) {
	var issues []string
	doc := &Document{
		Path: path,
		Settings: Settings{
			Domain:   interpreter.DomainFallback,
			MaxDepth: interpreter.DefaultMaxDepth,
			LogLevel: zerolog.WarnLevel,
		},
		Expressions: make([]*NamedExpression, 0, len(df.Expressions)),
	}

	switch strings.ToLower(strings.TrimSpace(df.Settings.Domain)) {
	case "", "fallback":
	case "strict":
		doc.Settings.Domain = interpreter.DomainStrict
	default:
		issues = append(issues, fmt.Sprintf("settings.domain: unsupported policy %q (want fallback or strict)", df.Settings.Domain))
	}
	if df.Settings.MemoSize != nil {
		if *df.Settings.MemoSize < 0 {
			issues = append(issues, fmt.Sprintf("settings.memo_size must not be negative (got %d)", *df.Settings.MemoSize))
		} else {
			doc.Settings.MemoSize = *df.Settings.MemoSize
		}
	}
	if df.Settings.MaxDepth != nil {
		doc.Settings.MaxDepth = *df.Settings.MaxDepth
	}
	if level := strings.TrimSpace(df.Settings.LogLevel); level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			issues = append(issues, fmt.Sprintf("settings.log_level: unknown level %q", df.Settings.LogLevel))
		} else {
			doc.Settings.LogLevel = parsed
		}
	}

	seen := make(map[string]int, len(df.Expressions))
	for idx, entry := range df.Expressions {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			issues = append(issues, fmt.Sprintf("expressions[%d]: name must be provided", idx))
			continue
		}
		key := strings.ToLower(name)
		if other, exists := seen[key]; exists {
			issues = append(issues, fmt.Sprintf("expressions[%d]: name %q already used by expressions[%d]", idx, name, other))
			continue
		}
		seen[key] = idx
		if entry.Expr.expr == nil {
			issues = append(issues, fmt.Sprintf("expressions[%d] (%s): expr must be provided", idx, name))
			continue
		}
		named := &NamedExpression{Name: name, Expression: entry.Expr.expr}
		if entry.Expect != nil {
			expected := *entry.Expect
			named.Expected = &expected
		}
		doc.Expressions = append(doc.Expressions, named)
	}
	return doc, issues
}

// expressionYAML decodes the tree grammar: an integer scalar is a number,
// otherwise a single-key mapping of number, add, mul or f.
type expressionYAML struct {
	expr ast.Expression
}

func (e *expressionYAML) UnmarshalYAML(value *yaml.Node) error {
	d := &expressionDecoder{root: "expr"}
	expr, err := d.decodeExpression(value, "expr")
	if err != nil {
		return err
	}
	e.expr = expr
	return nil
}

// maxAliasExpansions caps how many aliases one expression may dereference.
// Nested anchors otherwise double the decoded tree per level, and an anchor
// that refers to itself never terminates.
const maxAliasExpansions = 1000

type expressionDecoder struct {
	root    string
	aliases int
}

// resolve follows alias chains, charging each hop to the expansion budget.
func (d *expressionDecoder) resolve(value *yaml.Node) (*yaml.Node, error) {
	for value.Kind == yaml.AliasNode {
		d.aliases++
		if d.aliases > maxAliasExpansions {
			return nil, fmt.Errorf("%s: document contains excessive aliasing", d.root)
		}
		value = value.Alias
	}
	return value, nil
}

func (d *expressionDecoder) decodeExpression(value *yaml.Node, path string) (ast.Expression, error) {
	value, err := d.resolve(value)
	if err != nil {
		return nil, err
	}
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			return nil, fmt.Errorf("%s: missing expression", path)
		}
		n, err := d.decodeInteger(value, path)
		if err != nil {
			return nil, err
		}
		return ast.NewNumber(n), nil
	case yaml.MappingNode:
		if len(value.Content) != 2 {
			return nil, fmt.Errorf("%s: expected exactly one of number, add, mul or f", path)
		}
		keyNode, valNode := value.Content[0], value.Content[1]
		key := strings.TrimSpace(keyNode.Value)
		switch key {
		case "number":
			n, err := d.decodeInteger(valNode, path+".number")
			if err != nil {
				return nil, err
			}
			return ast.NewNumber(n), nil
		case "add", "mul":
			left, right, err := d.decodeOperands(valNode, path+"."+key)
			if err != nil {
				return nil, err
			}
			if key == "add" {
				return ast.NewAddition(left, right), nil
			}
			return ast.NewMultiplication(left, right), nil
		case "f":
			arg, err := d.decodeExpression(valNode, path+".f")
			if err != nil {
				return nil, err
			}
			return ast.NewF(arg), nil
		default:
			return nil, fmt.Errorf("%s: unknown expression kind %q", path, key)
		}
	default:
		return nil, fmt.Errorf("%s: expected integer or mapping, found %s", path, value.ShortTag())
	}
}

func (d *expressionDecoder) decodeOperands(value *yaml.Node, path string) (ast.Expression, ast.Expression, error) {
	value, err := d.resolve(value)
	if err != nil {
		return nil, nil, err
	}
	if value.Kind != yaml.SequenceNode || len(value.Content) != 2 {
		return nil, nil, fmt.Errorf("%s: expected a sequence of two expressions", path)
	}
	left, err := d.decodeExpression(value.Content[0], path+"[0]")
	if err != nil {
		return nil, nil, err
	}
	right, err := d.decodeExpression(value.Content[1], path+"[1]")
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func (d *expressionDecoder) decodeInteger(value *yaml.Node, path string) (int64, error) {
	value, err := d.resolve(value)
	if err != nil {
		return 0, err
	}
	if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!int" {
		return 0, fmt.Errorf("%s: expected integer, found %s", path, value.ShortTag())
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}
