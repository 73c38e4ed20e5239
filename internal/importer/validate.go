package importer

import (
	"fmt"
	"time"

	"github.com/CalebGreaves/tta-summary-dev/internal/domain"
)

// ValidateImportSchema checks referential integrity and date formats before
// conversion: refs must be unique across the file, every session must point
// at a defined activity, and all dates must parse.
func ValidateImportSchema(schema *ImportSchema) error {
	refs := make(map[string]bool)
	activityRefs := make(map[string]bool)

	addRef := func(ref, kind string) error {
		if ref == "" {
			return fmt.Errorf("%s with empty ref", kind)
		}
		if refs[ref] {
			return fmt.Errorf("duplicate ref %q", ref)
		}
		refs[ref] = true
		return nil
	}

	checkDate := func(value, ref, field string) error {
		if value == "" {
			return nil
		}
		if _, err := time.Parse(domain.DateLayout, value); err != nil {
			return fmt.Errorf("ref %q: invalid %s %q: %w", ref, field, value, err)
		}
		return nil
	}

	validateActivities := func(activities []ActivityImport) error {
		for _, a := range activities {
			if err := addRef(a.Ref, "activity"); err != nil {
				return err
			}
			activityRefs[a.Ref] = true
			if err := checkDate(a.StartDate, a.Ref, "start_date"); err != nil {
				return err
			}
			if err := checkDate(a.EndDate, a.Ref, "end_date"); err != nil {
				return err
			}
		}
		return nil
	}

	validateObjectives := func(objectives []ObjectiveImport) error {
		for _, o := range objectives {
			if err := addRef(o.Ref, "objective"); err != nil {
				return err
			}
			if err := validateActivities(o.Activities); err != nil {
				return err
			}
		}
		return nil
	}

	for _, src := range schema.Sources {
		if err := addRef(src.Ref, "source"); err != nil {
			return err
		}
		if len(src.Goals) > 0 && len(src.Objectives) > 0 {
			return fmt.Errorf("source %q has both goals and direct objectives", src.Ref)
		}
		for _, g := range src.Goals {
			if err := addRef(g.Ref, "goal"); err != nil {
				return err
			}
			if err := validateObjectives(g.Objectives); err != nil {
				return err
			}
		}
		if err := validateObjectives(src.Objectives); err != nil {
			return err
		}
	}

	for i, s := range schema.Sessions {
		if s.Summary == "" {
			return fmt.Errorf("session %d: empty summary", i)
		}
		if !activityRefs[s.ActivityRef] {
			return fmt.Errorf("session %d: unknown activity_ref %q", i, s.ActivityRef)
		}
		if err := checkDate(s.Date, s.ActivityRef, "date"); err != nil {
			return err
		}
	}

	return nil
}
