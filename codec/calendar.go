package codec

import (
	"strings"
	"time"

	"github.com/alwitt/qrbook/models"
)

const (
	// iCalDateLayout yyyyMMdd
	iCalDateLayout = "20060102"
	// iCalDateTimeLayout yyyyMMdd'T'HHmmss
	iCalDateTimeLayout = "20060102T150405"

	vEventBegin = "BEGIN:VEVENT"

	allDayStartPrefix = "DTSTART;VALUE=DATE:"
	allDayEndPrefix   = "DTEND;VALUE=DATE:"
	timedStartPrefix  = "DTSTART:"
	timedEndPrefix    = "DTEND:"
)

// combineDateAndTime take the calendar date of one timestamp and the time-of-day of another
func combineDateAndTime(date time.Time, timeOfDay time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), timeOfDay.Second(), 0,
		date.Location(),
	)
}

/*
EncodeCalendarEvent encode a calendar event as iCalendar

Timestamps are written as floating wall-clock values in the location of each timestamp.

	@param event models.CalendarEventData - the event
	@returns the iCalendar lines joined by "\n"
*/
func EncodeCalendarEvent(event models.CalendarEventData) string {
	lines := []string{"BEGIN:VCALENDAR", "VERSION:2.0", vEventBegin}

	if event.AllDay {
		lines = append(
			lines,
			allDayStartPrefix+event.StartDate.Format(iCalDateLayout),
			allDayEndPrefix+event.EndDate.Format(iCalDateLayout),
		)
	} else {
		start := combineDateAndTime(event.StartDate, event.StartTime)
		end := combineDateAndTime(event.EndDate, event.EndTime)
		lines = append(
			lines,
			timedStartPrefix+start.Format(iCalDateTimeLayout),
			timedEndPrefix+end.Format(iCalDateTimeLayout),
		)
	}

	if event.Title != "" {
		lines = append(lines, "SUMMARY:"+event.Title)
	}
	if event.Location != "" {
		lines = append(lines, "LOCATION:"+event.Location)
	}
	if event.Description != "" {
		lines = append(lines, "DESCRIPTION:"+event.Description)
	}

	lines = append(lines, "END:VEVENT", "END:VCALENDAR")
	return strings.Join(lines, "\n")
}

/*
DecodeCalendarEvent decode an iCalendar event payload

Timestamps which are missing or fail to parse keep the zero time. A timed DTSTART / DTEND
populates both the date and the time-of-day field from the same instant.

	@param data string - the payload
	@param loc *time.Location - location the wall-clock values are interpreted in; nil
	    means time.Local
	@returns the event, and whether the payload is an iCalendar event
*/
func DecodeCalendarEvent(data string, loc *time.Location) (models.CalendarEventData, bool) {
	if !strings.Contains(data, vEventBegin) {
		return models.CalendarEventData{}, false
	}
	if loc == nil {
		loc = time.Local
	}

	var result models.CalendarEventData
	for _, line := range splitLines(data) {
		switch {
		case strings.HasPrefix(line, "SUMMARY:"):
			result.Title = strings.TrimPrefix(line, "SUMMARY:")

		case strings.HasPrefix(line, "LOCATION:"):
			result.Location = strings.TrimPrefix(line, "LOCATION:")

		case strings.HasPrefix(line, "DESCRIPTION:"):
			result.Description = strings.TrimPrefix(line, "DESCRIPTION:")

		case strings.HasPrefix(line, allDayStartPrefix):
			result.AllDay = true
			if parsed, err := time.ParseInLocation(
				iCalDateLayout, strings.TrimPrefix(line, allDayStartPrefix), loc,
			); err == nil {
				result.StartDate = parsed
			}

		case strings.HasPrefix(line, allDayEndPrefix):
			if parsed, err := time.ParseInLocation(
				iCalDateLayout, strings.TrimPrefix(line, allDayEndPrefix), loc,
			); err == nil {
				result.EndDate = parsed
			}

		case strings.HasPrefix(line, timedStartPrefix):
			if parsed, err := time.ParseInLocation(
				iCalDateTimeLayout, strings.TrimPrefix(line, timedStartPrefix), loc,
			); err == nil {
				result.StartDate = parsed
				result.StartTime = parsed
			}

		case strings.HasPrefix(line, timedEndPrefix):
			if parsed, err := time.ParseInLocation(
				iCalDateTimeLayout, strings.TrimPrefix(line, timedEndPrefix), loc,
			); err == nil {
				result.EndDate = parsed
				result.EndTime = parsed
			}
		}
	}
	return result, true
}
