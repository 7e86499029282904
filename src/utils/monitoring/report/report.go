package report

type Report struct {
	Grid *GridReport `json:"grid,omitempty"`
}
