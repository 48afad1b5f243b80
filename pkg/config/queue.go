package config

import "time"

// QueueConfig contains task queue and worker pool configuration.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentTasks is the global limit of concurrently processed tasks
	// across all replicas. Enforced by a database COUNT(*) check.
	MaxConcurrentTasks int `yaml:"max_concurrent_tasks"`

	// PollInterval is the base interval for checking pending tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// TaskTimeout is the maximum time a single task may run. RCA tasks run an
	// entire agent turn, so this must be at least the workflow turn timeout.
	TaskTimeout time.Duration `yaml:"task_timeout"`

	// HeartbeatInterval is how often a worker refreshes last_heartbeat_at.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// MaxTaskAttempts is the retry budget per task. A task that fails this
	// many times goes to failed instead of requeueing.
	MaxTaskAttempts int `yaml:"max_task_attempts"`

	// GracefulShutdownTimeout is the max wait for active tasks on shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned tasks.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a task can go without a heartbeat before
	// it is considered orphaned and requeued.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentTasks:      10,
		PollInterval:            time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		TaskTimeout:             30 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		MaxTaskAttempts:         3,
		GracefulShutdownTimeout: 30 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}
