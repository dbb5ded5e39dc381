// vrprobe is a one-shot diagnostic for the local OpenVR installation.
// It reports whether a runtime is installed and a headset is attached,
// attempts to bring up a session in the requested application mode, and
// prints what the runtime says about the display.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/vrmp/openvr-go/pkg/openvr"
)

var (
	styleOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleFail  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Width(24)
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var appTypes = map[string]openvr.ApplicationType{
	"other":      openvr.ApplicationOther,
	"scene":      openvr.ApplicationScene,
	"overlay":    openvr.ApplicationOverlay,
	"background": openvr.ApplicationBackground,
	"utility":    openvr.ApplicationUtility,
}

func main() {
	app := flag.String("app", "background", "application type: other|scene|overlay|background|utility")
	dumpErrors := flag.Bool("errors", false, "dump the known init error table and exit")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *dumpErrors {
		dumpErrorTable()
		return
	}

	appType, ok := appTypes[*app]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown application type %q\n", *app)
		os.Exit(2)
	}

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
	}

	printBool("Runtime installed", openvr.IsRuntimeInstalled())
	printBool("HMD present", openvr.IsHmdPresent())

	rt, err := openvr.Init(appType, openvr.WithLogger(logger))
	if err != nil {
		var code openvr.InitError
		if errors.As(err, &code) {
			printFail("Init ("+appType.String()+")", code.Symbol())
			fmt.Println(styleDim.Render("  " + code.Description()))
		} else {
			printFail("Init ("+appType.String()+")", err.Error())
		}
		os.Exit(1)
	}
	defer func() {
		if err := rt.Shutdown(); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	printOK("Init ("+appType.String()+")", fmt.Sprintf("session token %#x", rt.Token()))

	sys, err := rt.System()
	if err != nil {
		printFail("IVRSystem", err.Error())
		return
	}

	w, h := sys.RecommendedRenderTargetSize()
	printOK("Render target", fmt.Sprintf("%dx%d per eye", w, h))

	for _, eye := range []openvr.Eye{openvr.EyeLeft, openvr.EyeRight} {
		proj := sys.ProjectionMatrix(eye, 0.1, 100)
		fmt.Printf("%s %8.4f %8.4f %8.4f %8.4f\n",
			styleLabel.Render("Projection "+eye.String()),
			proj.At(0, 0), proj.At(1, 1), proj.At(0, 2), proj.At(1, 2))
	}
}

func dumpErrorTable() {
	for _, code := range openvr.KnownInitErrors() {
		fmt.Printf("%6d  %-55s %s\n", int32(code), code.Symbol(), styleDim.Render(code.Description()))
	}
}

func printBool(label string, v bool) {
	if v {
		printOK(label, "yes")
	} else {
		printFail(label, "no")
	}
}

func printOK(label, msg string) {
	fmt.Printf("%s %s %s\n", styleLabel.Render(label), styleOK.Render("OK"), msg)
}

func printFail(label, msg string) {
	fmt.Printf("%s %s %s\n", styleLabel.Render(label), styleFail.Render("--"), msg)
}
