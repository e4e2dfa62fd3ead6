// cmd/factweave/monitor.go
package main

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// monitorTimeout bounds one monitor pass end to end.
const monitorTimeout = 2 * time.Minute

// Monitor periodically scans news and raises crisis alerts.
type Monitor struct {
	scan     *ScanAgent
	crisis   *CrisisAgent
	notifier *Notifier
	cronSpec string
	cron     *cron.Cron
}

// NewMonitor creates a monitor. The notifier may be nil, in which case
// alerts are only logged.
func NewMonitor(scan *ScanAgent, crisis *CrisisAgent, notifier *Notifier, cronSpec string) *Monitor {
	return &Monitor{
		scan:     scan,
		crisis:   crisis,
		notifier: notifier,
		cronSpec: cronSpec,
	}
}

// Start schedules the monitor loop and runs one pass immediately.
func (m *Monitor) Start() error {
	m.cron = cron.New()
	if _, err := m.cron.AddFunc(m.cronSpec, m.RunOnce); err != nil {
		return NewAgentError(ErrorTypeNews, ErrNewsRequest, "invalid cron spec "+m.cronSpec, err)
	}
	m.cron.Start()
	GetLogger().Info("Crisis monitor scheduled: %s", m.cronSpec)

	m.RunOnce()
	return nil
}

// Stop halts the schedule and waits for a running pass to finish.
func (m *Monitor) Stop() {
	if m.cron != nil {
		<-m.cron.Stop().Done()
	}
}

// RunOnce performs one scan-and-detect pass.
func (m *Monitor) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), monitorTimeout)
	defer cancel()

	claims := m.scan.Scan(ctx)
	claims = append(claims, m.scan.ScanFeeds(ctx)...)

	resp := m.crisis.DetectCrisis(claims)
	if !resp.CrisisDetected {
		GetLogger().Info("Monitor pass complete: %d claims, no crisis indicators", len(claims))
		return
	}

	GetLogger().Warning("Monitor pass complete: %d claims, %d crisis alerts", len(claims), len(resp.Alerts))
	if m.notifier == nil {
		for _, alert := range resp.Alerts {
			GetLogger().Warning("ALERT %s [%s] %s (keywords: %v)", alert.ID, alert.Severity, alert.Description, alert.Keywords)
		}
		return
	}

	if err := m.notifier.NotifyCrisis(resp); err != nil {
		GetLogger().Error("Failed to deliver crisis alerts: %v", err)
	}
}
