package custom

import (
	"github.com/pftv-cli/pftv/filesystem"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// compile parses a script from the active filesystem into a bytecode prototype.
func compile(path string) (*lua.FunctionProto, error) {
	file, err := filesystem.API().Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	chunk, err := parse.Parse(file, path)
	if err != nil {
		return nil, err
	}

	return lua.Compile(chunk, path)
}

// run executes a compiled script in L so its globals become defined.
func run(L *lua.LState, proto *lua.FunctionProto) error {
	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}
