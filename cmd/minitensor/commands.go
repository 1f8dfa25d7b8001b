package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/born-ml/minitensor/loader"
	"github.com/born-ml/minitensor/nn"
	"github.com/born-ml/minitensor/tensor"
)

var errUsage = errors.New("usage")

// run dispatches a subcommand and writes its report to out.
func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		printUsage(out)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(out, "minitensor %s\n", version)
		return nil
	case "demo":
		return runDemo(out)
	case "predict":
		return runPredict(args[1:], out)
	case "fit":
		return runFit(args[1:], out)
	case "save":
		return runSave(args[1:], out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(out)
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, "minitensor - rank 2 tensors and linear regression")
	fmt.Fprintf(out, "Version: %s\n\n", version)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version    Show version")
	fmt.Fprintln(out, "  demo       Run Y = X @ W + b on a built-in example")
	fmt.Fprintln(out, "  predict    Apply weights to a CSV dataset")
	fmt.Fprintln(out, "  fit        Fit weights to a CSV dataset by least squares")
	fmt.Fprintln(out, "  save       Write weights and bias to a SafeTensors file")
}

func runDemo(out io.Writer) error {
	// 4 samples with 1 feature each, Y = 2 * X + 1.
	x, err := tensor.Matrix([][]float64{{1}, {2}, {3}, {4}})
	if err != nil {
		return err
	}
	w, err := tensor.Matrix([][]float64{{2}})
	if err != nil {
		return err
	}

	predictions, err := nn.Predict(x, w, tensor.Scalar(1.0))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Input X:")
	fmt.Fprintln(out, x)
	fmt.Fprintln(out, "\nPredictions (Y = 2 * X + 1):")
	fmt.Fprintln(out, predictions)
	return nil
}

func runPredict(args []string, out io.Writer) error {
	fs := newFlagSet("predict", out)
	dataPath := fs.String("data", "", "CSV file with feature columns followed by a target column")
	weights := fs.String("weights", "", "Weight matrix as a JSON literal, e.g. [[2]]")
	bias := fs.String("bias", "0", "Bias as a JSON literal, e.g. 1 or [1, 2]")
	modelPath := fs.String("model", "", "SafeTensors file written by save or fit (overrides -weights/-bias)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dataPath == "" {
		return fmt.Errorf("%w: predict requires -data", errUsage)
	}

	ds, err := loader.LoadCSV(*dataPath)
	if err != nil {
		return err
	}

	var layer *nn.Linear[float64]
	if *modelPath != "" {
		layer, err = nn.LoadLinear[float64](*modelPath)
	} else {
		if *weights == "" {
			return fmt.Errorf("%w: predict requires -weights or -model", errUsage)
		}
		layer, err = layerFromLiterals(*weights, *bias)
	}
	if err != nil {
		return err
	}

	predictions, err := layer.Forward(ds.Features)
	if err != nil {
		return err
	}
	loss, err := nn.MSE(predictions, ds.Targets)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Input X:")
	fmt.Fprintln(out, ds.Features)
	fmt.Fprintln(out, "\nPredictions (Y = X @ W + b):")
	fmt.Fprintln(out, predictions)
	fmt.Fprintf(out, "\nMSE: %.6g\n", loss)
	return nil
}

func runFit(args []string, out io.Writer) error {
	fs := newFlagSet("fit", out)
	dataPath := fs.String("data", "", "CSV file with feature columns followed by a target column")
	outPath := fs.String("out", "", "Optional SafeTensors file to write the fitted layer to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dataPath == "" {
		return fmt.Errorf("%w: fit requires -data", errUsage)
	}

	ds, err := loader.LoadCSV(*dataPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Loaded %d samples with %d features\n", ds.Len(), ds.NumFeatures())

	layer, err := nn.FitLeastSquares(ds.Features, ds.Targets)
	if err != nil {
		return err
	}
	predictions, err := layer.Forward(ds.Features)
	if err != nil {
		return err
	}
	loss, err := nn.MSE(predictions, ds.Targets)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Weights:")
	fmt.Fprintln(out, layer.Weight().Tensor())
	fmt.Fprintln(out, "Bias:")
	fmt.Fprintln(out, layer.Bias().Tensor())
	fmt.Fprintf(out, "MSE: %.6g\n", loss)

	if *outPath != "" {
		if err := layer.Save(*outPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved to %s\n", *outPath)
	}
	return nil
}

func runSave(args []string, out io.Writer) error {
	fs := newFlagSet("save", out)
	weights := fs.String("weights", "", "Weight matrix as a JSON literal, e.g. [[2]]")
	bias := fs.String("bias", "0", "Bias as a JSON literal, e.g. 1 or [1, 2]")
	outPath := fs.String("out", "", "SafeTensors file to write")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *weights == "" || *outPath == "" {
		return fmt.Errorf("%w: save requires -weights and -out", errUsage)
	}

	layer, err := layerFromLiterals(*weights, *bias)
	if err != nil {
		return err
	}
	if err := layer.Save(*outPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "Saved %d x %d linear layer to %s\n", layer.InFeatures(), layer.OutFeatures(), *outPath)
	return nil
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

// layerFromLiterals builds a Linear layer from JSON weight and bias literals.
func layerFromLiterals(weights, bias string) (*nn.Linear[float64], error) {
	w, err := parseTensor("weights", weights)
	if err != nil {
		return nil, err
	}
	b, err := parseTensor("bias", bias)
	if err != nil {
		return nil, err
	}
	return nn.NewLinear(w, b)
}

// parseTensor decodes a JSON number or nested array into a tensor.
func parseTensor(name, literal string) (*tensor.Tensor[float64], error) {
	var value any
	if err := json.Unmarshal([]byte(literal), &value); err != nil {
		return nil, fmt.Errorf("invalid -%s literal %q: %w", name, literal, err)
	}
	t, err := tensor.FromNested[float64](value)
	if err != nil {
		return nil, fmt.Errorf("invalid -%s literal %q: %w", name, literal, err)
	}
	return t, nil
}
