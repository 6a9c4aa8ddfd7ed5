package usecase

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/job-assistant/internal/model"
	"github.com/fadilmartias/job-assistant/internal/util"
)

const tailorSystemPrompt = "You are an expert resume writer. You rewrite resume bullet points so they match a job description " +
	"without inventing facts. You always answer with a single JSON object."

// BuildTailorPrompt renders the user message asking the model to rewrite the
// bullets of exps for the given job.
func BuildTailorPrompt(company, jobDescription string, exps []model.WorkExperience) string {
	var b strings.Builder

	b.WriteString("Rewrite the bullet points of each experience below for this job")
	if company = strings.TrimSpace(company); company != "" {
		fmt.Fprintf(&b, " at %s", company)
	}
	b.WriteString(".\n\nJob description:\n")
	b.WriteString(strings.TrimSpace(jobDescription))
	b.WriteString("\n\n")

	for i, exp := range exps {
		fmt.Fprintf(&b, "Experience %d (id %q, keep exactly %d bullets)\n", i+1, exp.ID.String(), targetBullets(exp))
		fmt.Fprintf(&b, "Title: %s\n", exp.Title)
		fmt.Fprintf(&b, "Company: %s\n", exp.Company)
		fmt.Fprintf(&b, "Dates: %s\n", dateRange(exp))
		b.WriteString("Bullets:\n")
		b.WriteString(exp.Description)
		b.WriteString("\n\n")
	}

	b.WriteString(`Rules:
- Return the same number of bullets for each experience as it has now.
- Keep what each bullet says it did and its scope; only change wording and emphasis.
- Use keywords from the job description where they honestly apply.
- Do not add bullet markers to the text.

Answer with this JSON and nothing else, listing experiences in the order given:
{"results": [{"id": "<experience id>", "bullets": ["..."]}]}`)
	return b.String()
}

// targetBullets is the number of bullets a tailored experience must have.
func targetBullets(exp model.WorkExperience) int {
	if n := util.CountBullets(exp.Description); n > 0 {
		return n
	}
	return 1
}

func dateRange(exp model.WorkExperience) string {
	end := exp.EndDate
	if exp.IsCurrent() {
		end = "Present"
	}
	return fmt.Sprintf("%s - %s", exp.StartDate, end)
}
