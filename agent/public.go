package agent

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/finview"
	"github.com/etnz/finview/docs"
	"github.com/etnz/finview/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expected from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand the yearly financial statements of his company:
			revenue, taxes, margins and how they moved across the years.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

			The user will assume that you know his statement tabs, check them first to understand what they hold.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor returns the expert grounding answers in public financial news.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is an expert financial advisor,
		very well aware of the financial institutions, markets and taxes,
		and about the latest news concerning them.
		Ask the Advisor whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in corporate finance, you can search and find about anything related to
			financial institutions, companies, markets, taxes etc. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latests news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert that reads the user's statements through
// the given source.
func NewAnalyst(src finview.Source) *Expert {
	lib := []Function{tabsFunc(src), statementFunc(src)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's financial statements.
		He can list the statement tabs and render any of them as an indicator-by-year table,
		percentages included.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's financial statements.
				You know how to use the Tools to extract the relevant figures about the user's company.
				You are part of a team of experts, yours is everything about the user's statements. They might ask
				you questions about them, pardon their approximative language and figure out what they meant.

				Use the available tools to get information about the user's statements
				  - list of statement tabs
				  - one tab rendered as a table, optionally restricted to some years
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

// tabsFunc lists the statement tabs of the source.
func tabsFunc(src finview.Source) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Tabs",
			Description: `Tabs lists the statement tabs available in the user's workbook.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted list of the statement tabs.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			tabs, err := src.Tabs(ctx)
			if err != nil {
				return errorResponse(id, "Tabs", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Tabs",
				Response: map[string]any{
					"output": renderer.TabsMarkdown(tabs),
				},
			}
		},
	}
}

// statementFunc renders one statement tab as a table.
func statementFunc(src finview.Source) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Statement",
			Description: `Statement renders one statement tab as an indicator-by-year markdown table.

			` + must(docs.GetTopic("data")),
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"tab": {
						Type:        genai.TypeString,
						Description: "The name of the statement tab to render.",
					},
					"years": {
						Type:        genai.TypeString,
						Description: "Optional comma-separated years to restrict the table to, e.g. \"2022,2023\". All years by default.",
					},
				},
				Required: []string{"tab"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the statement, indicators as rows and years as columns.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			tab, ok := args["tab"].(string)
			if !ok || tab == "" {
				return errorResponse(id, "Statement", fmt.Errorf("argument 'tab' is required"))
			}
			years, err := parseYears(args)
			if err != nil {
				return errorResponse(id, "Statement", err)
			}

			records, err := src.Records(ctx, tab)
			if err != nil {
				return errorResponse(id, "Statement", err)
			}
			ds := finview.NewDataset(records)
			if years == nil {
				years = ds.Years()
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Statement",
				Response: map[string]any{
					"output": renderer.StatementMarkdown(tab, ds.Shape(years)),
				},
			}
		},
	}
}

// parseYears reads the optional comma-separated 'years' argument. Nil means
// no restriction.
func parseYears(args map[string]any) ([]int, error) {
	iyears, hasYears := args["years"]
	if !hasYears {
		return nil, nil
	}
	syears, ok := iyears.(string)
	if !ok {
		return nil, fmt.Errorf("argument 'years' is not a string as expected but %T", iyears)
	}
	syears = strings.TrimSpace(syears)
	if syears == "" {
		return nil, nil
	}

	var years []int
	for _, part := range strings.Split(syears, ",") {
		year, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("argument 'years' must be comma-separated years, got %q", syears)
		}
		years = append(years, year)
	}
	return years, nil
}
