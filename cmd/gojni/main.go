// Command gojni runs the static main method of a class file through the jni
// wrapper, on either the in-process runtime or a real JVM.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/urfave/cli.v1"

	"github.com/daimatz/gojni/pkg/bridge/cjni"
	"github.com/daimatz/gojni/pkg/config"
	"github.com/daimatz/gojni/pkg/hostvm"
	"github.com/daimatz/gojni/pkg/jni"
)

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Value: config.FileName,
		Usage: "configuration file; missing files fall back to defaults",
	}
	bridgeFlag = cli.StringFlag{
		Name:  "bridge",
		Usage: `VM bridge, "host" or "jni" (overrides jvm.bridge)`,
	}
	libraryFlag = cli.StringFlag{
		Name:  "library",
		Usage: "path of libjvm (overrides jvm.library)",
	}
	classPathFlag = cli.StringSliceFlag{
		Name:  "cp",
		Usage: "class path entry, repeatable (appended to jvm.class_path)",
	}
	optionFlag = cli.StringSliceFlag{
		Name:  "X",
		Usage: "VM option such as -Dkey=value, repeatable (appended to jvm.options)",
	}

	runCommand = cli.Command{
		Action:    run,
		Name:      "run",
		Usage:     "Run the static main method of a class file",
		ArgsUsage: "<classfile> [args...]",
		Flags:     []cli.Flag{bridgeFlag, libraryFlag, classPathFlag, optionFlag},
		Description: `
The class file is defined directly, so it may belong to any package. Its
main(String[]) method receives the remaining arguments.`,
	}
	locateCommand = cli.Command{
		Action:    locate,
		Name:      "locate",
		Usage:     "Print the JVM library the jni bridge would load",
		ArgsUsage: " ",
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "gojni"
	app.Usage = "call into a Java virtual machine from Go"
	app.Version = "0.1.0"
	app.ErrWriter = os.Stderr
	app.Flags = []cli.Flag{configFlag}
	app.Commands = []cli.Command{runCommand, locateCommand}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the global config file and applies command flags.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(ctx.GlobalString(configFlag.Name))
	if err != nil {
		return nil, err
	}
	if b := ctx.String(bridgeFlag.Name); b != "" {
		cfg.JVM.Bridge = b
	}
	if l := ctx.String(libraryFlag.Name); l != "" {
		cfg.JVM.Library = l
	}
	cfg.JVM.ClassPath = append(cfg.JVM.ClassPath, ctx.StringSlice(classPathFlag.Name)...)
	cfg.JVM.Options = append(cfg.JVM.Options, ctx.StringSlice(optionFlag.Name)...)
	return cfg, cfg.Validate()
}

func run(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		return cli.NewExitError("usage: gojni run <classfile> [args...]", 2)
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	path := ctx.Args().First()
	cfg.JVM.ClassPath = append([]string{filepath.Dir(path)}, cfg.JVM.ClassPath...)
	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer logger.Sync()
	jni.SetLogger(logger)

	opts, err := cfg.VMOptions(
		hostvm.WithLogger(logger),
		hostvm.WithStdout(ctx.App.Writer),
		hostvm.WithStderr(ctx.App.ErrWriter),
	)
	if err != nil {
		return err
	}
	vm, err := jni.NewVM(opts...)
	if err != nil {
		return err
	}
	defer vm.Close()

	return runMain(logger, path, ctx.Args().Tail())
}

func locate(ctx *cli.Context) error {
	path, err := cjni.NewLoader().Locate()
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, path)
	return nil
}
