package tab

// Replays is a placeholder for the replay browser.
type Replays struct {
	Base
}

func NewReplays() *Replays { return &Replays{} }

func (r *Replays) Name() string    { return "Replays" }
func (r *Replays) Color() ColorTag { return ColorFuchsia }

func (r *Replays) Render(Frame) []string {
	if !r.state.Active {
		return nil
	}
	return []string{"No replays available"}
}
