package models

// PublishJob is the per-tick unit of work. It is created at tick start,
// consumed fully within the tick, and never retained across ticks.
type PublishJob struct {
	// RunID correlates all log lines of one tick.
	RunID string
	// InputPath is the resolved workbook path for this tick.
	InputPath string
	// OutputPath is the local artifact path.
	OutputPath string
	// RemotePath is the logical path of the artifact in the remote store.
	RemotePath string
	// AuctionMode selects auction rendering; false means listing mode.
	AuctionMode bool
	// Upload enables the remote publish step.
	Upload bool
}
