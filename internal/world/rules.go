package world

import (
	"errors"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// RuleSet is a scripted traversability predicate. A map may ship a
// companion <name>.rules.lua next to its .map file defining
//
//	function traversable(glyph)
//		return glyph ~= "#"
//	end
//
// where glyph arrives as a one-character string. Script errors fail closed:
// the glyph is treated as an obstacle.
type RuleSet struct {
	state *lua.LState
	fn    lua.LValue
}

// LoadRules compiles the rule script at path. A missing file is not an
// error; it returns (nil, nil) and callers fall back to the fixed set.
func LoadRules(path string) (*RuleSet, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	state := lua.NewState()
	if err := state.DoFile(path); err != nil {
		state.Close()
		return nil, fmt.Errorf("could not parse rule script %s: %w", path, err)
	}

	fn := state.GetGlobal("traversable")
	if fn.Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("rule script %s does not define traversable()", path)
	}

	return &RuleSet{state: state, fn: fn}, nil
}

// ParseRules compiles a rule script from source text.
func ParseRules(script string) (*RuleSet, error) {
	state := lua.NewState()
	if err := state.DoString(script); err != nil {
		state.Close()
		return nil, fmt.Errorf("could not parse rule script: %w", err)
	}

	fn := state.GetGlobal("traversable")
	if fn.Type() != lua.LTFunction {
		state.Close()
		return nil, errors.New("rule script does not define traversable()")
	}

	return &RuleSet{state: state, fn: fn}, nil
}

func (r *RuleSet) Traversable(glyph rune) bool {
	err := r.state.CallByParam(lua.P{
		Fn:      r.fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(string(glyph)))
	if err != nil {
		return false
	}

	ret := r.state.Get(-1)
	r.state.Pop(1)
	return lua.LVAsBool(ret)
}

func (r *RuleSet) Close() {
	r.state.Close()
}
