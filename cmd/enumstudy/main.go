package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"enumstudy/evaluator-go/pkg/driver"
	"enumstudy/evaluator-go/pkg/enums"
	"enumstudy/evaluator-go/pkg/hanoi"
	"enumstudy/evaluator-go/pkg/interpreter"
)

const cliToolVersion = "enumstudy 0.0.0-dev"

//go:embed playground.yml
var playgroundDocument []byte

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		return runTour(stdout, stderr)
	}

	switch args[0] {
	case "--help", "-h":
		printUsage(stdout)
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(stdout, cliToolVersion)
		return 0
	}

	if len(args) > 2 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(args[2:], " "))
		return 1
	}
	doc, err := driver.LoadDocument(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "failed to load document: %v\n", err)
		return 1
	}
	if len(args) == 2 {
		entry, ok := doc.Find(args[1])
		if !ok {
			fmt.Fprintf(stderr, "no expression named %q in %s\n", args[1], doc.Path)
			return 1
		}
		doc = &driver.Document{Path: doc.Path, Settings: doc.Settings, Expressions: []*driver.NamedExpression{entry}}
	}
	return evaluateDocument(doc, stdout, stderr)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  enumstudy                      print the enumeration tour")
	fmt.Fprintln(w, "  enumstudy <document.yml>       evaluate every expression in a document")
	fmt.Fprintln(w, "  enumstudy <document.yml> NAME  evaluate one named expression")
}

func runTour(stdout, stderr io.Writer) int {
	fmt.Fprintln(stdout, "== Matching enumerations")
	directionToHead := enums.East
	fmt.Fprintln(stdout, directionToHead.Describe())
	fmt.Fprintln(stdout, enums.Earth.Describe())

	fmt.Fprintln(stdout, "== Associated values")
	var productBarcode enums.Barcode = enums.UPCA{NumberSystem: 8, Manufacturer: 85909, Product: 51226, Check: 3}
	fmt.Fprintln(stdout, enums.DescribeBarcode(productBarcode))
	productBarcode = enums.QRCode{ProductCode: "ABCDEFGHIJKLMNOP"}
	fmt.Fprintln(stdout, enums.DescribeBarcode(productBarcode))

	fmt.Fprintln(stdout, "== Raw values")
	fmt.Fprintf(stdout, "earth's order: %d\n", enums.Earth.RawValue())
	fmt.Fprintf(stdout, "sunset direction: %s\n", enums.West.RawValue())
	fmt.Fprintf(stdout, "line feed: %q\n", enums.LineFeed.RawValue())
	if planet, ok := enums.PlanetFromRawValue(7); ok {
		fmt.Fprintf(stdout, "planet at position 7: %s\n", planet)
	}
	fmt.Fprintln(stdout, enums.DescribePosition(9))

	fmt.Fprintln(stdout, "== Recursive enumerations")
	doc, err := driver.ParseDocument(bytes.NewReader(playgroundDocument), "playground.yml")
	if err != nil {
		fmt.Fprintf(stderr, "failed to load playground document: %v\n", err)
		return 1
	}
	if code := evaluateDocument(doc, stdout, stderr); code != 0 {
		return code
	}

	steps, err := hanoi.StepsFor(6)
	if err != nil {
		fmt.Fprintf(stderr, "failed to count hanoi steps: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "hanoi steps for 6 disks: %d\n", steps)
	return 0
}

func evaluateDocument(doc *driver.Document, stdout, stderr io.Writer) int {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(doc.Settings.LogLevel).
		With().Timestamp().Logger()

	interp, err := interpreter.NewWithConfig(doc.InterpreterConfig(&logger))
	if err != nil {
		fmt.Fprintf(stderr, "invalid settings in %s: %v\n", doc.Path, err)
		return 1
	}

	exitCode := 0
	for _, res := range driver.Run(doc, interp) {
		if res.Err != nil {
			logger.Error().Err(res.Err).Str("expression", res.Name).Msg("evaluation failed")
			exitCode = 1
			continue
		}
		fmt.Fprintf(stdout, "%s = %d\n", res.Name, res.Value)
		if res.Failed() {
			logger.Error().
				Str("expression", res.Name).
				Int64("expected", *res.Expected).
				Int64("got", res.Value).
				Msg("expectation mismatch")
			exitCode = 1
		}
	}
	logger.Debug().Uint64("visits", interp.Visits()).Str("document", doc.Path).Msg("document evaluated")
	return exitCode
}
