package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/daimatz/gojni/pkg/classfile"
	"github.com/daimatz/gojni/pkg/jni"
)

const mainDescriptor = "([Ljava/lang/String;)V"

// runMain defines the class in path and calls its main method with args.
func runMain(logger *zap.Logger, path string, args []string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cf, err := classfile.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	name, err := cf.ClassName()
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if m := cf.FindMethod("main", mainDescriptor); m == nil || !m.IsStatic() {
		return fmt.Errorf("%s has no static main(String[]) method", name)
	}

	cls, err := jni.DefineClass(name, nil, data)
	if err != nil {
		return err
	}
	defer cls.Release()

	logger.Debug("running main", zap.String("class", name), zap.Strings("args", args))
	_, err = jni.CallStatic[jni.Void](cls, "main"+mainDescriptor, args)
	return err
}
