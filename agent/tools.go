package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/etnz/chaucha"
	"github.com/etnz/chaucha/docs"
	"github.com/etnz/chaucha/renderer"
	"google.golang.org/genai"
)

// Profiler gives access to the current profile.
type Profiler interface {
	Snapshot() chaucha.UserData
}

// Tools returns the functions the mentor can call to read fresh figures from p.
func Tools(p Profiler, cur string) []Function {
	return []Function{
		profileTool(p, cur),
		variableExpensesTool(p, cur),
		queryTool(p),
	}
}

func profileTool(p Profiler, cur string) *Func {
	const name = "Profile"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Profile returns the user's current financial profile: dashboard figures,
			the monthly budget with fixed and variable expenses, and the savings goals.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown document with the user's figures, amounts in " + cur + ".",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return outputResponse(id, name, renderer.Profile(p.Snapshot(), cur))
		},
	}
}

func variableExpensesTool(p Profiler, cur string) *Func {
	const name = "VariableExpenses"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: `VariableExpenses returns the discretionary spending grouped by category, largest first, with each category's share of the total.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of categories, amounts and percentages.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return outputResponse(id, name, renderer.VariableExpenses(chaucha.VariableExpenses(p.Snapshot().Transactions), cur))
		},
	}
}

func queryTool(p Profiler) *Func {
	const name = "Query"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Query extracts values from the user's profile document with a JSONPath expression.

			` + must(docs.GetTopic("query")),
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"path": {
						Type:        genai.TypeString,
						Description: "The JSONPath expression, e.g. $.goals[*].name",
					},
				},
				Required: []string{"path"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The matched values encoded in JSON.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			path, ok := args["path"].(string)
			if !ok {
				return errorResponse(id, name, fmt.Errorf("argument 'path' is not a string as expected but %T", args["path"]))
			}
			v, err := chaucha.Query(p.Snapshot(), path)
			if err != nil {
				return errorResponse(id, name, err)
			}
			out, err := json.Marshal(v)
			if err != nil {
				return errorResponse(id, name, err)
			}
			return outputResponse(id, name, string(out))
		},
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
