package engine

import (
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-experience/internal/config"
)

// ExportCalendar writes entries as an iCalendar document: one all-day event
// per entry, spanning start to end inclusive. The total and the algorithm
// name are stamped on the calendar itself.
func ExportCalendar(w io.Writer, entries []Entry, calc Calculator, now time.Time) error {
	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyAlgorithm, calc.Name(),
	)

	if len(entries) == 0 {
		// A valid but empty VCALENDAR keeps calendar clients from rejecting the file.
		if _, err := io.WriteString(w, config.StubVCalendar); err != nil {
			return fmt.Errorf("%s: %w", config.ErrExportWrite, err)
		}
		log.Debug(config.MsgExportDone, config.LogKeyCount, 0)
		return nil
	}

	total := calc.Aggregate(entries)

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)
	cal.Props.SetText(config.PropXTotal, total.ISO())
	cal.Props.SetText(config.PropXAlgorithm, calc.Name())

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(now.UTC())

	for i, e := range entries {
		event := newEntryEvent(e, i)
		event.Props.Set(dtStamp)
		cal.Children = append(cal.Children, event.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	log.Info(config.MsgExportDone,
		config.LogKeyCount, len(entries),
		config.LogKeyTotal, total.String(),
	)
	return nil
}

// newEntryEvent maps the entry at position index to an all-day VEVENT. DTEND
// is exclusive, so it is set to the day after the entry's end date.
func newEntryEvent(e Entry, index int) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, entryUID(e, index))
	event.Props.SetText(config.PropSummary, e.CompanyName)
	event.Props.SetText(config.PropDescription, e.Duration.String())
	event.Props.SetText(config.PropXDuration, e.Duration.ISO())

	dtStart := ical.NewProp(config.PropDTStart)
	dtStart.SetDate(e.Period.Start)
	event.Props.Set(dtStart)

	dtEnd := ical.NewProp(config.PropDTEnd)
	dtEnd.SetDate(e.Period.End.AddDate(0, 0, 1))
	event.Props.Set(dtEnd)

	return event
}

// entryUID derives a stable identifier so re-exports update instead of duplicate.
// The list position keeps identical entries distinct.
func entryUID(e Entry, index int) string {
	input := fmt.Sprintf(config.FormatHashInput,
		e.CompanyName,
		FormatDate(e.Period.Start),
		FormatDate(e.Period.End),
		index,
		config.UIDSalt,
	)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf(config.FormatUID, fmt.Sprintf("%x", hash[:config.UIDHashLength]), config.ICalDomain)
}
