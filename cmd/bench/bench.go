// bench.go runs the superdense coding protocol for each entry in the
// cartesian product of a collection of noise parameters, e.g. depolarizing
// error rates and relaxation times, and outputs a CSV of decoding statistics
// for each combination.
package main

import (
	"fmt"
	"html/template"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/deadserpent/superdense/superdense"
)

var (
	singleErr = flag.Float64Slice("singleErr", []float64{0.01},
		"The depolarizing parameter for single-qubit gates.")
	twoErr = flag.Float64Slice("twoErr", []float64{0.05},
		"The depolarizing parameter for two-qubit gates.")
	t1 = flag.Float64Slice("t1", []float64{30e-6},
		"The relaxation time constant, in seconds.")
	t2 = flag.Float64Slice("t2", []float64{40e-6},
		"The dephasing time constant, in seconds.")
	gateTime = flag.Float64Slice("gateTime", []float64{50e-9},
		"The duration thermal relaxation acts over per gate, in seconds.")
	shots = flag.IntSlice("shots", []int{1024},
		"The measurement shots to sample per input message.")
	seed = flag.Int64("seed", 1234, "The PRNG seed for shot sampling.")
)

var (
	inputs  = []string{"singleErr", "twoErr", "t1", "t2", "gateTime", "shots"}
	columns = []string{"SingleErr", "TwoErr", "T1", "T2", "GateTime", "Shots",
		"MeanFidelity", "MinFidelity", "WorstInput", "MeanSuccess", "Succeeded"}
)

// An Experiment packages together the result of benchmarking a single
// parameterization for easy formatting.
type Experiment struct {
	// Fields corresponding to experiment parameters
	SingleErr float64
	TwoErr    float64
	T1, T2    float64
	GateTime  float64
	Shots     int

	// Fields corresponding to experiment results
	MeanFidelity float64
	MinFidelity  float64
	WorstInput   string
	MeanSuccess  float64
	Succeeded    bool
}

func main() {
	flag.Parse()
	fmt.Println(header())
	tmpl := template.Must(template.New("line").Parse(lineTmpl()))
	var args [][]interface{}
	for _, inp := range inputs {
		args = append(args, lookupInput(inp))
	}
	applyCartesian(func(args []interface{}) {
		exp := &Experiment{
			SingleErr: args[inpIndex("singleErr")].(float64),
			TwoErr:    args[inpIndex("twoErr")].(float64),
			T1:        args[inpIndex("t1")].(float64),
			T2:        args[inpIndex("t2")].(float64),
			GateTime:  args[inpIndex("gateTime")].(float64),
			Shots:     args[inpIndex("shots")].(int),
		}
		if err := bench(exp); err != nil {
			log.Printf("Benching %v: %v", exp, err)
		}
		if err := tmpl.Execute(os.Stdout, exp); err != nil {
			log.Fatalf("BUG: could not fill in line template: %v", err)
		}
	}, args)
}

func inpIndex(v string) int {
	for i, inp := range inputs {
		if inp == v {
			return i
		}
	}
	return -1
}

func bench(exp *Experiment) error {
	cfg := &superdense.Config{
		NoiseLevels: map[string]superdense.NoiseParams{
			"bench": {
				SingleGateError: exp.SingleErr,
				TwoGateError:    exp.TwoErr,
				T1:              exp.T1,
				T2:              exp.T2,
				GateTime:        exp.GateTime,
			},
		},
	}
	s, err := superdense.Noisy("bench", cfg)
	if err != nil {
		return err
	}
	p, err := superdense.NewProtocol(s, rand.New(rand.NewSource(*seed)))
	if err != nil {
		return err
	}
	results, err := p.RunAll(exp.Shots)
	if err != nil {
		return err
	}

	exp.MinFidelity = math.Inf(1)
	for _, bits := range superdense.Inputs() {
		res := results[bits]
		exp.MeanFidelity += res.Fidelity / 4
		exp.MeanSuccess += res.SuccessRate / 4
		if res.Fidelity < exp.MinFidelity {
			exp.MinFidelity = res.Fidelity
			exp.WorstInput = bits
		}
	}
	exp.Succeeded = exp.MeanSuccess > 25 // better than random guessing
	return nil
}

func header() string {
	return strings.Join(columns, ", ")
}

func lineTmpl() string {
	var els []string
	for _, c := range columns {
		els = append(els, "{{."+c+"}}")
	}
	return strings.Join(els, ", ") + "\n"
}

func lookupInput(name string) []interface{} {
	var r []interface{}
	if v, err := flag.CommandLine.GetIntSlice(name); err == nil {
		for _, val := range v {
			r = append(r, val)
		}
	} else if v, err := flag.CommandLine.GetFloat64Slice(name); err == nil {
		for _, val := range v {
			r = append(r, val)
		}
	} else {
		log.Fatalf("Unknown type for input %s", name)
	}
	return r
}

func applyCartesian(f func([]interface{}), args [][]interface{}) {
	for i := range args {
		if len(args[i]) == 1 {
			continue
		}
		l := make([][]interface{}, len(args))
		r := make([][]interface{}, len(args))
		copy(l, args)
		copy(r, args)
		l[i] = args[i][:1]
		r[i] = args[i][1:]
		applyCartesian(f, l)
		applyCartesian(f, r)
		return
	}
	x := make([]interface{}, 0, len(args))
	for _, a := range args {
		x = append(x, a[0])
	}
	f(x)
}
