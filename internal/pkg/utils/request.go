package utils

import (
	"errors"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/exceptions"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// multipartMemory bounds the in-memory part of a multipart body, the rest
// spills to temporary files.
const multipartMemory = constvars.MaxPictureSizeInBytes + 1<<20

// ParseForm accepts multipart and urlencoded bodies alike.
func ParseForm(r *http.Request) error {
	var err error
	if strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEMultipartForm) {
		err = r.ParseMultipartForm(multipartMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return exceptions.ErrCannotParseMultipartForm(err)
	}
	return nil
}

// OptionalFormFile returns the header of an uploaded file, or nil when the
// field was not sent.
func OptionalFormFile(r *http.Request, field string) (*multipart.FileHeader, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	file.Close()
	return header, nil
}

// OptionalFormValue distinguishes an absent form field from an empty one.
func OptionalFormValue(r *http.Request, field string) *string {
	values, ok := r.Form[field]
	if !ok || len(values) == 0 {
		return nil
	}
	value := values[0]
	return &value
}

func ParseDateOfBirth(value string) (time.Time, error) {
	dateOfBirth, err := time.Parse(constvars.DateOfBirthLayout, value)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err)
	}
	return dateOfBirth.UTC(), nil
}

// CombineDateAndTime keeps the calendar day of date and replaces its clock
// with an HH:MM value. An empty clock keeps the original time of day.
func CombineDateAndTime(date time.Time, clock string) (time.Time, error) {
	date = date.UTC()
	if clock == "" {
		return date, nil
	}
	parsed, err := time.Parse(constvars.ScheduleTimeFmt, clock)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, time.UTC), nil
}
