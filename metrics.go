package phare

import (
	"errors"
	"fmt"

	"github.com/farcloser/phare/internal/types"
)

// Lighthouse category keys.
const (
	CategoryPerformance   = "performance"
	CategoryAccessibility = "accessibility"
	CategoryBestPractices = "best-practices"
)

// Lighthouse audit keys.
const (
	AuditFirstContentfulPaint   = "first-contentful-paint"
	AuditLargestContentfulPaint = "largest-contentful-paint"
	AuditSpeedIndex             = "speed-index"
	AuditTotalBlockingTime      = "total-blocking-time"
	AuditInteractive            = "interactive"
	AuditCumulativeLayoutShift  = "cumulative-layout-shift"
)

// Categories returns the compared categories, in display order.
func Categories() []types.MetricDefinition {
	return []types.MetricDefinition{
		{Key: CategoryPerformance, Label: "Performance", IsCategory: true},
		{Key: CategoryAccessibility, Label: "Accessibility", IsCategory: true},
		{Key: CategoryBestPractices, Label: "Best Practices", IsCategory: true},
	}
}

// Metrics returns the compared technical audits, in display order.
func Metrics() []types.MetricDefinition {
	return []types.MetricDefinition{
		{Key: AuditFirstContentfulPaint, Label: "First Contentful Paint", Unit: types.UnitMilliseconds},
		{Key: AuditLargestContentfulPaint, Label: "Largest Contentful Paint", Unit: types.UnitMilliseconds},
		{Key: AuditSpeedIndex, Label: "Speed Index", Unit: types.UnitMilliseconds},
		{Key: AuditTotalBlockingTime, Label: "Total Blocking Time", Unit: types.UnitMilliseconds},
		{Key: AuditInteractive, Label: "Time to Interactive", Unit: types.UnitMilliseconds},
		{Key: AuditCumulativeLayoutShift, Label: "Cumulative Layout Shift", Unit: types.UnitNone},
	}
}

// Device is the Lighthouse form factor a group of reports was captured with.
type Device int

const (
	DeviceDesktop Device = iota
	DeviceMobile
)

func (d Device) String() string {
	switch d {
	case DeviceDesktop:
		return "desktop"
	case DeviceMobile:
		return "mobile"
	}

	return "unknown"
}

// ErrUnknownDevice is returned by ParseDevice for anything but desktop or mobile.
var ErrUnknownDevice = errors.New("unknown device")

// ParseDevice converts a string to a Device value.
func ParseDevice(s string) (Device, error) {
	switch s {
	case "desktop":
		return DeviceDesktop, nil
	case "mobile":
		return DeviceMobile, nil
	default:
		return 0, fmt.Errorf("%w %q (valid: desktop, mobile)", ErrUnknownDevice, s)
	}
}

// FormFactorMismatches returns the reports whose recorded form factor is not device.
// Reports that do not record a form factor are never reported.
func FormFactorMismatches(reports []*types.Report, device Device) []*types.Report {
	var mismatched []*types.Report

	for _, report := range reports {
		if report.FormFactor == "" {
			continue
		}

		if parsed, err := ParseDevice(report.FormFactor); err != nil || parsed != device {
			mismatched = append(mismatched, report)
		}
	}

	return mismatched
}
