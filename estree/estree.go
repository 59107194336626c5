// Package estree encodes syntax trees as ESTree JSON documents and checks
// documents against the ESTree schema for ES5 programs.
package estree

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/pkg/errors"

	"github.com/t14raptor/go-esprima/ast"
)

// Options selects the optional position fields written for each node.
type Options struct {
	// Range writes "range": [start, end] byte offsets.
	Range bool
	// Loc writes "loc" for nodes that carry a location. The tree must
	// have been parsed with parser.WithLocations.
	Loc bool
}

// Marshal encodes prog as ESTree JSON.
func Marshal(prog *ast.Program, opts Options) ([]byte, error) {
	e := encoder{opts: opts}
	buf, err := marshal(e.node(prog))
	if err != nil {
		return nil, errors.Wrap(err, "encoding ESTree")
	}
	return buf, nil
}

// marshal is json.Marshal without HTML escaping, so operators such as <
// and && are written literally.
func marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// MarshalIndent is Marshal with indented output.
func MarshalIndent(prog *ast.Program, opts Options, indent string) ([]byte, error) {
	buf, err := Marshal(prog, opts)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf, "", indent); err != nil {
		return nil, errors.Wrap(err, "indenting ESTree")
	}
	return out.Bytes(), nil
}

type field struct {
	key   string
	value interface{}
}

// object is a JSON object that keeps its keys in insertion order.
type object []field

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := marshal(f.value)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", f.key)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type encoder struct {
	opts Options
}

func (e encoder) expr(x ast.Expression) interface{} {
	if n := x.Unwrap(); n != nil {
		return e.node(n)
	}
	return nil
}

func (e encoder) stmt(s ast.Statement) interface{} {
	if n := s.Unwrap(); n != nil {
		return e.node(n)
	}
	return nil
}

func (e encoder) exprs(list ast.Expressions) []interface{} {
	out := make([]interface{}, 0, len(list))
	for _, x := range list {
		out = append(out, e.expr(x))
	}
	return out
}

func (e encoder) stmts(list ast.Statements) []interface{} {
	out := make([]interface{}, 0, len(list))
	for _, s := range list {
		out = append(out, e.stmt(s))
	}
	return out
}

func (e encoder) idents(list []*ast.Identifier) []interface{} {
	out := make([]interface{}, 0, len(list))
	for _, id := range list {
		out = append(out, e.node(id))
	}
	return out
}

// optional encodes n, or null when n is nil.
func (e encoder) optional(n ast.Node, present bool) interface{} {
	if !present {
		return nil
	}
	return e.node(n)
}

func (e encoder) forHead(h ast.ForHead) interface{} {
	if h.Declaration != nil {
		return e.node(h.Declaration)
	}
	return e.expr(h.Expression)
}

func (e encoder) function(typ string, fn *ast.Function) object {
	return object{
		{"type", typ},
		{"id", e.optional(fn.ID, fn.ID != nil)},
		{"params", e.idents(fn.Params)},
		{"body", e.node(fn.Body)},
	}
}

// node encodes n and its subtree.
func (e encoder) node(n ast.Node) object {
	var o object
	switch n := n.(type) {
	case *ast.Program:
		o = object{{"type", "Program"}, {"body", e.stmts(n.Body)}}
	case *ast.Identifier:
		o = object{{"type", "Identifier"}, {"name", n.Name}}
	case *ast.NullLiteral:
		o = object{{"type", "Literal"}, {"value", nil}, {"raw", "null"}}
	case *ast.BooleanLiteral:
		raw := "false"
		if n.Value {
			raw = "true"
		}
		o = object{{"type", "Literal"}, {"value", n.Value}, {"raw", raw}}
	case *ast.NumericLiteral:
		var value interface{} = n.Value
		if math.IsInf(n.Value, 0) || math.IsNaN(n.Value) {
			value = nil
		}
		o = object{{"type", "Literal"}, {"value", value}, {"raw", n.Raw}}
	case *ast.StringLiteral:
		o = object{{"type", "Literal"}, {"value", n.Value}, {"raw", n.Raw}}
	case *ast.RegExpLiteral:
		o = object{
			{"type", "Literal"},
			{"value", nil},
			{"raw", n.Raw},
			{"regex", object{{"pattern", n.Pattern}, {"flags", n.Flags}}},
		}
	case *ast.ThisExpression:
		o = object{{"type", "ThisExpression"}}
	case *ast.ArrayExpression:
		o = object{{"type", "ArrayExpression"}, {"elements", e.exprs(n.Elements)}}
	case *ast.ObjectExpression:
		props := make([]interface{}, 0, len(n.Properties))
		for _, p := range n.Properties {
			props = append(props, e.node(p))
		}
		o = object{{"type", "ObjectExpression"}, {"properties", props}}
	case *ast.Property:
		o = object{
			{"type", "Property"},
			{"key", e.expr(n.Key)},
			{"value", e.expr(n.Value)},
			{"kind", string(n.Kind)},
		}
	case *ast.FunctionExpression:
		o = e.function("FunctionExpression", &n.Function)
	case *ast.SequenceExpression:
		o = object{{"type", "SequenceExpression"}, {"expressions", e.exprs(n.Expressions)}}
	case *ast.UnaryExpression:
		o = object{
			{"type", "UnaryExpression"},
			{"operator", n.Operator.String()},
			{"prefix", n.Prefix},
			{"argument", e.expr(n.Argument)},
		}
	case *ast.BinaryExpression:
		o = object{
			{"type", "BinaryExpression"},
			{"operator", n.Operator.String()},
			{"left", e.expr(n.Left)},
			{"right", e.expr(n.Right)},
		}
	case *ast.AssignmentExpression:
		o = object{
			{"type", "AssignmentExpression"},
			{"operator", n.Operator.String()},
			{"left", e.expr(n.Left)},
			{"right", e.expr(n.Right)},
		}
	case *ast.UpdateExpression:
		o = object{
			{"type", "UpdateExpression"},
			{"operator", n.Operator.String()},
			{"argument", e.expr(n.Argument)},
			{"prefix", n.Prefix},
		}
	case *ast.LogicalExpression:
		o = object{
			{"type", "LogicalExpression"},
			{"operator", n.Operator.String()},
			{"left", e.expr(n.Left)},
			{"right", e.expr(n.Right)},
		}
	case *ast.ConditionalExpression:
		o = object{
			{"type", "ConditionalExpression"},
			{"test", e.expr(n.Test)},
			{"consequent", e.expr(n.Consequent)},
			{"alternate", e.expr(n.Alternate)},
		}
	case *ast.NewExpression:
		o = object{{"type", "NewExpression"}, {"callee", e.expr(n.Callee)}, {"arguments", e.exprs(n.Arguments)}}
	case *ast.CallExpression:
		o = object{{"type", "CallExpression"}, {"callee", e.expr(n.Callee)}, {"arguments", e.exprs(n.Arguments)}}
	case *ast.MemberExpression:
		o = object{
			{"type", "MemberExpression"},
			{"computed", n.Computed},
			{"object", e.expr(n.Object)},
			{"property", e.expr(n.Property)},
		}

	case *ast.ExpressionStatement:
		o = object{{"type", "ExpressionStatement"}, {"expression", e.expr(n.Expression)}}
		if n.Directive != "" {
			o = append(o, field{"directive", n.Directive})
		}
	case *ast.BlockStatement:
		o = object{{"type", "BlockStatement"}, {"body", e.stmts(n.Body)}}
	case *ast.EmptyStatement:
		o = object{{"type", "EmptyStatement"}}
	case *ast.DebuggerStatement:
		o = object{{"type", "DebuggerStatement"}}
	case *ast.WithStatement:
		o = object{{"type", "WithStatement"}, {"object", e.expr(n.Object)}, {"body", e.stmt(n.Body)}}
	case *ast.ReturnStatement:
		o = object{{"type", "ReturnStatement"}, {"argument", e.expr(n.Argument)}}
	case *ast.LabeledStatement:
		o = object{{"type", "LabeledStatement"}, {"label", e.node(n.Label)}, {"body", e.stmt(n.Body)}}
	case *ast.BreakStatement:
		o = object{{"type", "BreakStatement"}, {"label", e.optional(n.Label, n.Label != nil)}}
	case *ast.ContinueStatement:
		o = object{{"type", "ContinueStatement"}, {"label", e.optional(n.Label, n.Label != nil)}}
	case *ast.IfStatement:
		o = object{
			{"type", "IfStatement"},
			{"test", e.expr(n.Test)},
			{"consequent", e.stmt(n.Consequent)},
			{"alternate", e.stmt(n.Alternate)},
		}
	case *ast.SwitchStatement:
		cases := make([]interface{}, 0, len(n.Cases))
		for _, c := range n.Cases {
			cases = append(cases, e.node(c))
		}
		o = object{{"type", "SwitchStatement"}, {"discriminant", e.expr(n.Discriminant)}, {"cases", cases}}
	case *ast.SwitchCase:
		o = object{{"type", "SwitchCase"}, {"test", e.expr(n.Test)}, {"consequent", e.stmts(n.Consequent)}}
	case *ast.ThrowStatement:
		o = object{{"type", "ThrowStatement"}, {"argument", e.expr(n.Argument)}}
	case *ast.TryStatement:
		o = object{
			{"type", "TryStatement"},
			{"block", e.node(n.Block)},
			{"handler", e.optional(n.Handler, n.Handler != nil)},
			{"finalizer", e.optional(n.Finalizer, n.Finalizer != nil)},
		}
	case *ast.CatchClause:
		o = object{{"type", "CatchClause"}, {"param", e.node(n.Param)}, {"body", e.node(n.Body)}}
	case *ast.WhileStatement:
		o = object{{"type", "WhileStatement"}, {"test", e.expr(n.Test)}, {"body", e.stmt(n.Body)}}
	case *ast.DoWhileStatement:
		o = object{{"type", "DoWhileStatement"}, {"body", e.stmt(n.Body)}, {"test", e.expr(n.Test)}}
	case *ast.ForStatement:
		o = object{
			{"type", "ForStatement"},
			{"init", e.forHead(n.Init)},
			{"test", e.expr(n.Test)},
			{"update", e.expr(n.Update)},
			{"body", e.stmt(n.Body)},
		}
	case *ast.ForInStatement:
		o = object{
			{"type", "ForInStatement"},
			{"left", e.forHead(n.Left)},
			{"right", e.expr(n.Right)},
			{"body", e.stmt(n.Body)},
		}
	case *ast.FunctionDeclaration:
		o = e.function("FunctionDeclaration", &n.Function)
	case *ast.VariableDeclaration:
		decls := make([]interface{}, 0, len(n.Declarations))
		for _, d := range n.Declarations {
			decls = append(decls, e.node(d))
		}
		o = object{{"type", "VariableDeclaration"}, {"declarations", decls}, {"kind", n.Kind.String()}}
	case *ast.VariableDeclarator:
		o = object{{"type", "VariableDeclarator"}, {"id", e.node(n.ID)}, {"init", e.expr(n.Init)}}
	default:
		panic(errors.Errorf("estree: unexpected node type %T", n))
	}
	return e.position(o, n.Base())
}

func (e encoder) position(o object, base *ast.NodeBase) object {
	if e.opts.Range {
		o = append(o, field{"range", [2]int{int(base.Range[0]), int(base.Range[1])}})
	}
	if e.opts.Loc && base.Loc != nil {
		o = append(o, field{"loc", location(base.Loc)})
	}
	return o
}

func location(loc *ast.SourceLocation) object {
	o := object{
		{"start", object{{"line", loc.Start.Line}, {"column", loc.Start.Column}}},
		{"end", object{{"line", loc.End.Line}, {"column", loc.End.Column}}},
	}
	if loc.Source != "" {
		o = append(o, field{"source", loc.Source})
	}
	return o
}
