package metrics

const (
	MonitorCPUTimeH = "The process CPU time reported by the CPU clock"
	MonitorCPUTimeN = "chronotool_monitor_cpu_time_seconds"

	MonitorMonotonicTimeH = "The current reading of the monotonic clock"
	MonitorMonotonicTimeN = "chronotool_monitor_monotonic_time_seconds"

	MonitorSamplesH = "The total number of clock samples taken by the monitor"
	MonitorSamplesN = "chronotool_monitor_samples"

	MonitorUptimeH = "The elapsed time since the monitor started"
	MonitorUptimeN = "chronotool_monitor_uptime_seconds"
)
