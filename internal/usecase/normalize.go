package usecase

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/job-assistant/internal/model"
	"github.com/fadilmartias/job-assistant/internal/util"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

var recordNamespace = uuid.MustParse("8d5c3f0e-4b7a-5e21-9c4d-2f6a1b0e7c93")

// normalizeExtraction converts the model's resume JSON into canonical
// profile records. Any field of the wrong type falls back to its zero value.
func normalizeExtraction(parsed gjson.Result) model.ResumeExtraction {
	out := model.ResumeExtraction{
		Summary:        strings.TrimSpace(util.StringOrEmpty(parsed.Get("summary"))),
		WorkExperience: []model.WorkExperience{},
		Education:      []model.Education{},
		Skills:         []string{},
	}

	for _, item := range util.ArrayOrEmpty(parsed.Get("workExperience")) {
		out.WorkExperience = append(out.WorkExperience, model.WorkExperience{
			ID:          model.RecordID(strings.TrimSpace(util.Stringify(item.Get("id")))),
			Company:     field(item, "company"),
			Title:       field(item, "title"),
			StartDate:   field(item, "startDate"),
			EndDate:     field(item, "endDate"),
			Description: util.NormalizeDescription(descriptionText(item.Get("description"))),
		})
	}

	for _, item := range util.ArrayOrEmpty(parsed.Get("education")) {
		out.Education = append(out.Education, model.Education{
			ID:             model.RecordID(strings.TrimSpace(util.Stringify(item.Get("id")))),
			Institution:    field(item, "institution"),
			Degree:         field(item, "degree"),
			Field:          field(item, "field"),
			GraduationDate: field(item, "graduationDate"),
		})
	}

	var skills []string
	for _, item := range util.ArrayOrEmpty(parsed.Get("skills")) {
		skills = append(skills, util.Stringify(item))
	}
	out.Skills = model.DedupeSkills(skills)

	assignWorkExperienceIDs(out.WorkExperience)
	assignEducationIDs(out.Education)
	return out
}

// descriptionText accepts a description given as text or as a list of lines.
func descriptionText(v gjson.Result) string {
	if !v.IsArray() {
		return util.Stringify(v)
	}
	var lines []string
	for _, line := range v.Array() {
		if s := strings.TrimSpace(util.Stringify(line)); s != "" {
			lines = append(lines, s)
		}
	}
	return strings.Join(lines, "\n")
}

func field(item gjson.Result, key string) string {
	return strings.TrimSpace(util.Stringify(item.Get(key)))
}

// assignWorkExperienceIDs gives every record without an id a deterministic
// id derived from company, title and start date.
func assignWorkExperienceIDs(exps []model.WorkExperience) {
	used := make(map[model.RecordID]struct{}, len(exps))
	for _, e := range exps {
		if e.ID != "" {
			used[e.ID] = struct{}{}
		}
	}
	for i := range exps {
		if exps[i].ID != "" {
			continue
		}
		exps[i].ID = contentID(used, "work", exps[i].Company, exps[i].Title, exps[i].StartDate)
	}
}

// assignEducationIDs is assignWorkExperienceIDs for education records.
func assignEducationIDs(edus []model.Education) {
	used := make(map[model.RecordID]struct{}, len(edus))
	for _, e := range edus {
		if e.ID != "" {
			used[e.ID] = struct{}{}
		}
	}
	for i := range edus {
		if edus[i].ID != "" {
			continue
		}
		e := edus[i]
		edus[i].ID = contentID(used, "education", e.Institution, e.Degree, e.Field, e.GraduationDate)
	}
}

// contentID hashes parts into a name-based UUID. Identical records in the
// same batch get an occurrence suffix so ids stay distinct.
func contentID(used map[model.RecordID]struct{}, parts ...string) model.RecordID {
	key := strings.ToLower(strings.Join(parts, "\x1f"))
	for n := 0; ; n++ {
		name := key
		if n > 0 {
			name = fmt.Sprintf("%s#%d", key, n)
		}
		id := model.RecordID(uuid.NewSHA1(recordNamespace, []byte(name)).String())
		if _, taken := used[id]; !taken {
			used[id] = struct{}{}
			return id
		}
	}
}
