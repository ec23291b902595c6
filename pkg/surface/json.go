package surface

import (
	"encoding/json"
	"io"

	"github.com/mindwell/mindwell/pkg/mood"
	"github.com/mindwell/mindwell/pkg/scoring"
	"github.com/mindwell/mindwell/pkg/selfcare"
)

// JSONRenderer marshals results to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, result *scoring.Result) error {
	return encode(w, result)
}

func (r *JSONRenderer) RenderTrend(w io.Writer, trend mood.Trend) error {
	return encode(w, trend)
}

func (r *JSONRenderer) RenderPlan(w io.Writer, plan Plan) error {
	if plan.Tasks == nil {
		plan.Tasks = []selfcare.Task{}
	}
	return encode(w, plan)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
