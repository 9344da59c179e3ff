package hh

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// The eight field-group extractors. Each is a pure function of the page
// state (plus raw markup where a fallback needs it) and is wrapped in
// mapSection/listSection by Extract, so an internal fault degrades only its
// own section.

func extractPersonalInfo(state PageState, html string) map[string]any {
	out := map[string]any{}

	if v := field(state, "firstName"); v != nil {
		out["first_name"] = v
	}
	if v := field(state, "lastName"); v != nil {
		out["last_name"] = v
	}
	if v := field(state, "middleName"); v != nil {
		out["middle_name"] = v
	}
	if v := str(field(state, "fio")); v != "" {
		if decoded, err := url.QueryUnescape(v); err == nil {
			out["name"] = decoded
		} else {
			out["name"] = v
		}
	}
	if v := field(state, "age"); v != nil {
		out["age"] = v
	}
	if v := field(state, "birthday"); v != nil {
		out["birth_date"] = v
	}
	if v := field(state, "gender"); v != nil {
		out["gender"] = titleOrString(v)
	}
	if v := readiness(field(state, "relocation")); v != nil {
		out["relocation"] = v
	}
	if v := readiness(field(state, "businessTripReadiness")); v != nil {
		out["business_trip_readiness"] = v
	}

	// The title tag only seeds a bare name when the state gave us nothing.
	if len(out) == 0 {
		if name := pageTitle(html); name != "" {
			out["name"] = name
		}
	}
	return out
}

// readiness unwraps relocation-style values: {"type": {"title": ...}} or a
// plain {"title": ...} mapping or a scalar.
func readiness(v any) any {
	if m, ok := v.(map[string]any); ok {
		if t := dig(m, "type", "title"); t != nil {
			return t
		}
		if t, ok := m["title"]; ok {
			return t
		}
		return nil
	}
	return v
}

// pageTitle returns the trimmed <title> text of the raw markup.
func pageTitle(html string) string {
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func extractPosition(state PageState) map[string]any {
	out := map[string]any{}

	if v := field(state, "title"); v != nil {
		out["title"] = v
	}
	if sal := asMap(field(state, "salary")); sal != nil {
		salary := map[string]any{}
		if amount, ok := sal["amount"]; ok {
			salary["amount"] = amount
		}
		if currency, ok := sal["currency"]; ok {
			// Currency arrives either as a bare label or as a mapping
			// carrying one under "title".
			salary["currency"] = titleOrString(currency)
		}
		if gross, ok := sal["gross"]; ok {
			salary["gross"] = gross
		}
		if len(salary) > 0 {
			out["salary"] = salary
		}
	}
	if v := field(state, "employment"); v != nil {
		out["employment"] = stringList(v)
	}
	if v := field(state, "schedule"); v != nil {
		out["schedule"] = stringList(v)
	}
	return out
}

// stringList normalizes employment/schedule style values. Lists of
// {"string": ...} mappings become plain string lists; a single scalar or
// mapping passes through via its title.
func stringList(v any) any {
	list, ok := v.([]any)
	if !ok {
		return titleOrString(v)
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		switch t := item.(type) {
		case string:
			out = append(out, t)
		case map[string]any:
			if s := str(t["string"]); s != "" {
				out = append(out, s)
			} else if s := str(t["title"]); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func extractLocation(state PageState) map[string]any {
	out := map[string]any{}

	if area := asMap(field(state, "area")); area != nil {
		if name, ok := area["name"]; ok {
			out["city"] = name
		} else if title, ok := area["title"]; ok {
			out["city"] = title
		}
		if id, ok := area["id"]; ok {
			out["city_id"] = id
		}
	}
	if v := field(state, "metro"); v != nil {
		out["metro"] = titleOrString(v)
	}
	if v := field(state, "residenceDistrict"); v != nil {
		out["district"] = titleOrString(v)
	}
	titles := []string{}
	for _, item := range asList(field(state, "citizenship")) {
		if title := str(dig(item, "title")); title != "" {
			titles = append(titles, title)
		}
	}
	if len(titles) > 0 {
		out["citizenship"] = titles
	}
	return out
}

func extractExperience(state PageState) []ExperienceEntry {
	out := []ExperienceEntry{}

	for _, item := range asList(field(state, "experience")) {
		job := asMap(item)
		if job == nil {
			continue
		}
		entry := JobEntry{
			Type:        "job",
			Company:     companyName(job),
			Position:    str(job["position"]),
			Description: str(job["description"]),
			StartDate:   str(job["startDate"]),
			EndDate:     str(job["endDate"]),
			Area:        str(titleOrString(readMapValue(job, "area"))),
			CompanyID:   job["companyId"],
			CompanyURL:  str(job["companyUrl"]),
			Profession:  str(titleOrString(job["profession"])),
		}
		entry.Current = entry.EndDate == ""
		for _, ind := range asList(job["industries"]) {
			if title := str(titleOrString(ind)); title != "" {
				entry.Industries = append(entry.Industries, title)
			}
		}
		out = append(out, entry)
	}

	if total := asMap(field(state, "totalExperience")); total != nil {
		out = append(out, TotalExperienceEntry{
			Type:   "total",
			Years:  intval(total["years"]),
			Months: intval(total["months"]),
		})
	}
	return out
}

// companyName resolves the employer name through the three shapes the source
// has used over time: a flat companyName field, a nested company mapping, or
// a raw company string.
func companyName(job map[string]any) string {
	if s := str(job["companyName"]); s != "" {
		return s
	}
	if s := str(dig(job, "company", "name")); s != "" {
		return s
	}
	return str(job["company"])
}

// readMapValue reads key from m, preferring a name field on area-style
// mappings.
func readMapValue(m map[string]any, key string) any {
	v := m[key]
	if inner := asMap(v); inner != nil {
		if name, ok := inner["name"]; ok {
			return name
		}
	}
	return v
}

func extractEducation(state PageState) []EducationEntry {
	out := []EducationEntry{}

	if level := field(state, "educationLevel"); level != nil {
		if name := str(titleOrString(level)); name != "" {
			out = append(out, EducationEntry{Type: EducationKindLevel, Name: name})
		}
	}

	kinds := []struct {
		key  string
		kind EducationKind
	}{
		{"primaryEducation", EducationKindPrimary},
		{"additionalEducation", EducationKindAdditional},
		{"attestationEducation", EducationKindAttestation},
	}
	for _, k := range kinds {
		for _, item := range asList(field(state, k.key)) {
			m := asMap(item)
			if m == nil {
				continue
			}
			entry := EducationEntry{
				Type: k.kind,
				Name: str(m["name"]),
				Year: m["year"],
			}
			if s := str(m["organization"]); s != "" {
				entry.Organization = s
			} else {
				entry.Organization = str(m["faculty"])
			}
			if s := str(m["result"]); s != "" {
				entry.Result = s
			} else {
				entry.Result = str(m["specialization"])
			}
			out = append(out, entry)
		}
	}
	return out
}

func extractSkills(state PageState) []SkillEntry {
	out := []SkillEntry{}

	kinds := []struct {
		key     string
		kind    SkillKind
		nameKey string
	}{
		{"keySkills", SkillKindKey, "string"},
		{"advancedKeySkills", SkillKindAdvanced, "name"},
		{"skills", SkillKindExperience, "name"},
	}
	for _, k := range kinds {
		for _, item := range asList(field(state, k.key)) {
			m := asMap(item)
			if m == nil {
				continue
			}
			name := str(m[k.nameKey])
			if name == "" {
				// The name field differs per kind; fall back to the
				// other one before giving up on the entry.
				if name = str(m["name"]); name == "" {
					name = str(m["string"])
				}
			}
			if name == "" {
				continue
			}
			general, _ := m["general"].(bool)
			out = append(out, SkillEntry{
				Type:    k.kind,
				Name:    name,
				ID:      m["id"],
				General: general,
			})
		}
	}
	return out
}

func extractLanguages(state PageState) []LanguageEntry {
	out := []LanguageEntry{}

	for _, item := range asList(field(state, "language")) {
		m := asMap(item)
		if m == nil {
			continue
		}
		name := str(m["title"])
		if name == "" {
			continue
		}
		out = append(out, LanguageEntry{
			ID:    m["id"],
			Name:  name,
			Level: str(titleOrString(m["degree"])),
		})
	}
	return out
}

// contactFields are the contact channels the source is known to supply.
var contactFields = []string{"email", "phone", "skype", "homepage", "contact"}

func extractContacts(state PageState) map[string]any {
	out := map[string]any{}

	resume := asMap(dig(map[string]any(state), "resume"))
	for _, key := range contactFields {
		raw, ok := resume[key]
		if !ok || raw == nil {
			continue
		}
		// Unlike the other sections, a contact without the {value}
		// envelope passes through raw.
		if m := asMap(raw); m != nil {
			if v, has := m["value"]; has {
				if v != nil {
					out[key] = v
				}
				continue
			}
		}
		out[key] = raw
	}
	return out
}

func extractAdditionalInfo(state PageState) map[string]any {
	out := map[string]any{}

	fields := []struct {
		src, dst string
	}{
		{"id", "id"},
		{"hash", "hash"},
		{"status", "status"},
		{"percent", "percent"},
		{"created_at", "created_at"},
		{"updated_at", "updated_at"},
		{"permission", "permission"},
		{"source", "source"},
		{"driverLicenseTypes", "driver_license_types"},
		{"hasVehicle", "has_vehicle"},
		{"portfolio", "portfolio"},
		{"recommendation", "recommendations"},
	}
	for _, f := range fields {
		if v := field(state, f.src); v != nil {
			out[f.dst] = titleOrString(v)
		}
	}

	if total := asMap(field(state, "totalExperience")); total != nil {
		out["total_experience"] = map[string]any{
			"years":  intval(total["years"]),
			"months": intval(total["months"]),
		}
	}

	names := []string{}
	for _, item := range asList(field(state, "specializations")) {
		if name := str(dig(item, "name")); name != "" {
			names = append(names, name)
		}
	}
	if len(names) > 0 {
		out["specializations"] = names
	}
	return out
}
