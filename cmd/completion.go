package cmd

import (
	"flag"

	"github.com/etnz/chaucha/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// argPredictors predicts the positional arguments of the subcommands that have some.
var argPredictors = map[string]complete.Predictor{
	"import": predict.Files("*.csv"),
	"topic":  topicPredictor{},
}

// Completion describes the command line of c for shell completion: global
// flags, subcommands and their flags.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	c.VisitAll(func(f *flag.Flag) { root.Flags[f.Name] = flagPredictor(f) })
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{
			Flags: map[string]complete.Predictor{},
			Args:  argPredictors[cmd.Name()],
		}
		fs.VisitAll(func(f *flag.Flag) { sub.Flags[f.Name] = flagPredictor(f) })
		root.Sub[cmd.Name()] = sub
	})
	return root
}

// flagPredictor predicts nothing for boolean flags, which take no value.
func flagPredictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "data-dir":
		return predict.Dirs("*")
	case "o":
		return predict.Files("*.csv")
	case "type":
		return predict.Set{"savings", "investment", "purchase"}
	case "p":
		return predict.Set{"day", "week", "month", "quarter", "year"}
	}
	return predict.Something
}

// topicPredictor predicts documentation topics.
type topicPredictor struct{}

func (topicPredictor) Predict(prefix string) []string {
	topics, _ := docs.GetAllTopics()
	return topics
}
