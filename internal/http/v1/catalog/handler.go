package catalog

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clubechip/signup-api/internal/form"
)

// PlansListInput selects the carrier whose plans are returned.
type PlansListInput struct {
	Operator string `query:"operator" doc:"Carrier to list plans for" example:"vivo" enum:"vivo,claro,tim" required:"true"`
}

// Plan is the HTTP model for a subscription plan.
type Plan struct {
	ID   string `json:"id"   doc:"Plan identifier" example:"vivo-15"`
	Name string `json:"name" doc:"Display name"    example:"Vivo 15GB + ligações ilimitadas"`
}

// PlansListData is the response body for the plan catalog.
type PlansListData struct {
	Operator string `json:"operator" doc:"Carrier the plans belong to" example:"vivo"`
	Plans    []Plan `json:"plans"    doc:"Selectable plans"`
}

// PlansListOutput is the response wrapper for GET /plans.
type PlansListOutput struct {
	Body PlansListData
}

// RegionsListData is the response body for the region list.
type RegionsListData struct {
	Regions []string `json:"regions" doc:"Region (UF) codes" example:"SP"`
}

// RegionsListOutput is the response wrapper for GET /regions.
type RegionsListOutput struct {
	Body RegionsListData
}

// Register wires the static catalog routes. Plans are keyed by carrier:
// the form only offers plans belonging to the selected operator.
func Register(api huma.API, plans form.Catalog, regions []string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-plans",
		Method:      http.MethodGet,
		Path:        "/plans",
		Summary:     "List plans for a carrier",
		Tags:        []string{"Catalog"},
	}, func(_ context.Context, input *PlansListInput) (*PlansListOutput, error) {
		selectable := plans[form.Operator(input.Operator)]
		out := make([]Plan, len(selectable))
		for i, p := range selectable {
			out[i] = Plan{ID: p.ID, Name: p.Name}
		}
		return &PlansListOutput{Body: PlansListData{
			Operator: input.Operator,
			Plans:    out,
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-regions",
		Method:      http.MethodGet,
		Path:        "/regions",
		Summary:     "List region codes",
		Tags:        []string{"Catalog"},
	}, func(_ context.Context, _ *struct{}) (*RegionsListOutput, error) {
		return &RegionsListOutput{Body: RegionsListData{Regions: regions}}, nil
	})
}
