package vault

import (
	"strings"

	"github.com/trivault/trivault-backend/internal/domain"
)

// CreateEntryInput holds parameters for creating a password entry.
type CreateEntryInput struct {
	WebsiteName string
	ClientName  string
	Email       string
	Password    string
	Notes       string
	Tags        []string
}

// normalize trims text fields and de-duplicates tags.
func (i *CreateEntryInput) normalize() {
	i.WebsiteName = strings.TrimSpace(i.WebsiteName)
	i.ClientName = strings.TrimSpace(i.ClientName)
	i.Email = strings.TrimSpace(i.Email)
	i.Password = strings.TrimSpace(i.Password)
	i.Notes = strings.TrimSpace(i.Notes)
	i.Tags = domain.NormalizeTags(i.Tags)
}

// Validate checks that all required fields are present and well-formed.
// Every missing field is reported, not just the first.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.WebsiteName == "" {
		errs = append(errs, domain.FieldError{Field: "websiteName", Message: "required"})
	}
	if i.ClientName == "" {
		errs = append(errs, domain.FieldError{Field: "clientName", Message: "required"})
	}
	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !domain.ValidEmail(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "must be a valid email"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateEntryInput holds parameters for a partial entry update.
// Nil fields are left untouched.
type UpdateEntryInput struct {
	WebsiteName *string
	ClientName  *string
	Email       *string
	Password    *string
	Notes       *string
	Tags        []string
}

// normalize trims set text fields and de-duplicates tags.
func (i *UpdateEntryInput) normalize() {
	trim := func(p *string) {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	trim(i.WebsiteName)
	trim(i.ClientName)
	trim(i.Email)
	trim(i.Password)
	trim(i.Notes)
	if i.Tags != nil {
		i.Tags = domain.NormalizeTags(i.Tags)
	}
}

// Validate re-checks every touched required field. Untouched fields keep
// their stored values and are not validated here.
func (i UpdateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.WebsiteName != nil && *i.WebsiteName == "" {
		errs = append(errs, domain.FieldError{Field: "websiteName", Message: "must not be empty"})
	}
	if i.ClientName != nil && *i.ClientName == "" {
		errs = append(errs, domain.FieldError{Field: "clientName", Message: "must not be empty"})
	}
	if i.Email != nil {
		if *i.Email == "" {
			errs = append(errs, domain.FieldError{Field: "email", Message: "must not be empty"})
		} else if !domain.ValidEmail(*i.Email) {
			errs = append(errs, domain.FieldError{Field: "email", Message: "must be a valid email"})
		}
	}
	if i.Password != nil && *i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// params converts the input into repository update parameters.
func (i UpdateEntryInput) params() domain.EntryUpdateParams {
	return domain.EntryUpdateParams{
		WebsiteName: i.WebsiteName,
		ClientName:  i.ClientName,
		Email:       i.Email,
		Password:    i.Password,
		Notes:       i.Notes,
		Tags:        i.Tags,
	}
}

// ListEntriesInput holds the search term and tag selection for a list request.
type ListEntriesInput struct {
	Search string
	Tags   []string
}

// filter converts the input into a store filter. An empty search term and
// an empty tag selection mean no condition at all.
func (i ListEntriesInput) filter() domain.EntryFilter {
	f := domain.EntryFilter{}
	if s := strings.TrimSpace(i.Search); s != "" {
		f.Search = &s
	}
	for _, tag := range i.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			f.Tags = append(f.Tags, tag)
		}
	}
	return f
}
