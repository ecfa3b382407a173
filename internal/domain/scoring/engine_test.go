package scoring

import (
	"testing"

	"github.com/google/uuid"
)

func perfectCandidate() Candidate {
	return Candidate{
		ID:                 uuid.New(),
		FullName:           "Ada Example",
		YearsOfExperience:  10,
		NumberOfCompanies:  5,
		ProjectsHandled:    10,
		DesiredRole:        "backend engineer",
		PreferredDomain:    "fintech",
		KnowledgeScore:     100,
		CommunicationScore: 100,
		BehavioralScore:    100,
		HardSkills: []HardSkill{
			{Name: "Go", ProficiencyLevel: "expert", YearsExperience: 10},
			{Name: "PostgreSQL", ProficiencyLevel: "expert", YearsExperience: 8},
		},
		SoftSkills: []SoftSkill{
			{Name: "Communication", ProficiencyLevel: "expert"},
		},
	}
}

func demandingJob() Job {
	return Job{
		ID:                     uuid.New(),
		Title:                  "Senior Backend Engineer",
		Company:                "Acme",
		Location:               "Remote",
		Description:            "Fintech platform",
		MinimumYearsExperience: 5,
		RequiredHardSkills: []SkillRequirement{
			{Skill: "go", Weight: 3, Mandatory: true},
			{Skill: "postgresql", Weight: 2, Mandatory: true},
		},
		RequiredSoftSkills: []SkillRequirement{
			{Skill: "communication", Weight: 1, Mandatory: true},
		},
		PreferredSkills: []string{"postgresql", "go"},
	}
}

func TestEngineScore_ClampsAggregateAt100(t *testing.T) {
	e := NewEngine(DefaultWeights(), FuzzyMatcher{})
	res := e.Score(perfectCandidate(), demandingJob())

	// Hard skills exceed 100 per component and the preferred bonus pushes the
	// weighted sum over the top; only the aggregate clamp applies.
	if res.HardSkillsScore <= 100 {
		t.Fatalf("expected unclamped hard-skills component above 100, got %v", res.HardSkillsScore)
	}
	if res.MatchScore != 100 {
		t.Fatalf("expected clamped 100, got %v", res.MatchScore)
	}
}

func TestEngineScore_InRangeForAllInputs(t *testing.T) {
	e := NewEngine(DefaultWeights(), FuzzyMatcher{})
	candidates := []Candidate{
		{},
		perfectCandidate(),
		{YearsOfExperience: -3, CommunicationScore: 500, BehavioralScore: -50},
	}
	jobs := []Job{
		{},
		demandingJob(),
		{RequiredHardSkills: []SkillRequirement{
			{Skill: "cobol", Mandatory: true},
			{Skill: "fortran", Mandatory: true},
			{Skill: "ada", Mandatory: true},
			{Skill: "pascal", Mandatory: true},
			{Skill: "prolog", Mandatory: true},
			{Skill: "smalltalk", Mandatory: true},
			{Skill: "erlang", Mandatory: true},
		}},
	}

	for _, c := range candidates {
		for _, j := range jobs {
			res := e.Score(c, j)
			if res.MatchScore < 0 || res.MatchScore > 100 {
				t.Fatalf("match score out of range: %v", res.MatchScore)
			}
			if res.Breakdown.ExperienceGap < 0 {
				t.Fatalf("negative experience gap: %d", res.Breakdown.ExperienceGap)
			}
		}
	}
}

func TestEngineScore_Deterministic(t *testing.T) {
	e := NewEngine(DefaultWeights(), FuzzyMatcher{})
	c := perfectCandidate()
	j := demandingJob()

	first := e.Score(c, j)
	second := e.Score(c, j)
	if first.MatchScore != second.MatchScore {
		t.Fatalf("non-deterministic score: %v vs %v", first.MatchScore, second.MatchScore)
	}
	if first.HardSkillsScore != second.HardSkillsScore {
		t.Fatalf("non-deterministic hard-skills score")
	}
}

func TestEngineScore_NoOverlapNoMandatory(t *testing.T) {
	e := NewEngine(DefaultWeights(), FuzzyMatcher{})
	c := Candidate{
		YearsOfExperience:  5,
		CommunicationScore: 80,
		BehavioralScore:    80,
		KnowledgeScore:     80,
		HardSkills:         []HardSkill{{Name: "Go", ProficiencyLevel: "expert"}},
	}
	j := Job{Title: "Designer", MinimumYearsExperience: 5}

	res := e.Score(c, j)
	// Vacuous satisfaction on both skill axes.
	if res.HardSkillsScore != 100 || res.SoftSkillsScore != 100 {
		t.Fatalf("expected vacuous 100/100, got %v/%v", res.HardSkillsScore, res.SoftSkillsScore)
	}
	want := round2(100*0.40 + 100*0.20 + 100*0.20 + 80*0.15 + 50*0.05)
	if res.MatchScore != want {
		t.Fatalf("expected %v, got %v", want, res.MatchScore)
	}
}

func TestEngineScore_BreakdownSentences(t *testing.T) {
	e := NewEngine(DefaultWeights(), FuzzyMatcher{})
	c := Candidate{
		YearsOfExperience: 1,
		DesiredRole:       "backend engineer",
		HardSkills:        []HardSkill{{Name: "Go", ProficiencyLevel: "advanced", YearsExperience: 1}},
	}
	j := Job{
		Title:                  "Backend Engineer",
		MinimumYearsExperience: 4,
		RequiredHardSkills: []SkillRequirement{
			{Skill: "go", Weight: 1, Mandatory: true},
			{Skill: "kafka", Weight: 1, Mandatory: true},
		},
		RequiredSoftSkills: []SkillRequirement{
			{Skill: "leadership", Weight: 1, Mandatory: true},
		},
		PreferredSkills: []string{"go"},
	}

	res := e.Score(c, j)

	wantPenalties := []string{
		"Missing 1 mandatory hard skills",
		"Missing 1 mandatory soft skills",
		"3 years experience gap",
	}
	if len(res.Breakdown.PenaltiesApplied) != len(wantPenalties) {
		t.Fatalf("penalties = %v", res.Breakdown.PenaltiesApplied)
	}
	for i, p := range wantPenalties {
		if res.Breakdown.PenaltiesApplied[i] != p {
			t.Fatalf("penalty[%d] = %q, want %q", i, res.Breakdown.PenaltiesApplied[i], p)
		}
	}

	wantBonuses := []string{
		"1 preferred skills matched",
		"Desired role matches job title",
	}
	if len(res.Breakdown.BonusesApplied) != len(wantBonuses) {
		t.Fatalf("bonuses = %v", res.Breakdown.BonusesApplied)
	}
	for i, b := range wantBonuses {
		if res.Breakdown.BonusesApplied[i] != b {
			t.Fatalf("bonus[%d] = %q, want %q", i, res.Breakdown.BonusesApplied[i], b)
		}
	}

	if res.Breakdown.ExperienceGap != 3 {
		t.Fatalf("expected gap 3, got %d", res.Breakdown.ExperienceGap)
	}
}

func TestEngineScore_InjectedWeightsAndMatcher(t *testing.T) {
	// Only the communication component carries weight; exact matching makes
	// the fuzzy pair below miss.
	e := NewEngine(Weights{Communication: 1}, ExactMatcher{})
	c := Candidate{
		CommunicationScore: 70,
		BehavioralScore:    70,
		KnowledgeScore:     70,
		HardSkills:         []HardSkill{{Name: "ReactJS", ProficiencyLevel: "expert"}},
	}
	j := Job{RequiredHardSkills: []SkillRequirement{{Skill: "react", Weight: 1, Mandatory: true}}}

	res := e.Score(c, j)
	if res.HardSkillsScore != 0 {
		t.Fatalf("exact matcher must miss ReactJS vs react, got %v", res.HardSkillsScore)
	}
	if res.MatchScore != 70 {
		t.Fatalf("expected 70, got %v", res.MatchScore)
	}
	if len(res.Breakdown.MissingMandatoryHardSkills) != 1 {
		t.Fatalf("expected missing mandatory record")
	}
}

func TestNewEngine_Defaults(t *testing.T) {
	e := NewEngine(Weights{}, nil)
	res := e.Score(Candidate{}, Job{})
	if res.MatchScore < 0 || res.MatchScore > 100 {
		t.Fatalf("default engine out of range: %v", res.MatchScore)
	}
}
