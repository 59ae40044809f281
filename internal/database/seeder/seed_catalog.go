package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

type CatalogSeeder struct{}

func (CatalogSeeder) Name() string { return "catalog" }

type careerSeed struct {
	Name          string
	Description   string
	BaseSalary    int
	MinExperience int
	MaxExperience int
	Requirements  []requirementSeed
	Keywords      []keywordSeed
}

type requirementSeed struct {
	Skill      string
	Importance int
	Category   string
	Weight     float64
	IsRequired bool
	Difficulty string
}

type keywordSeed struct {
	Keyword    string
	Frequency  float64
	Importance int
}

func (CatalogSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "careers", "id", "name", "description", "base_salary", "min_experience", "max_experience"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "career_skills", "career_id", "skill_id", "importance", "category", "weight", "is_required", "difficulty"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, c := range defaultCareers() {
		if _, err := tx.Exec(ctx, `
INSERT INTO careers (id, name, description, base_salary, min_experience, max_experience)
VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
ON CONFLICT (name) DO NOTHING`,
			c.Name, c.Description, c.BaseSalary, c.MinExperience, c.MaxExperience,
		); err != nil {
			return err
		}

		for _, r := range c.Requirements {
			if _, err := tx.Exec(ctx,
				`INSERT INTO skills (id, name) VALUES (gen_random_uuid(), $1) ON CONFLICT (name) DO NOTHING`,
				r.Skill,
			); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `
INSERT INTO career_skills (id, career_id, skill_id, importance, category, weight, is_required, difficulty)
SELECT gen_random_uuid(), c.id, s.id, $3, $4, $5, $6, $7
FROM careers c, skills s
WHERE c.name = $1 AND s.name = $2
ON CONFLICT (career_id, skill_id) DO NOTHING`,
				c.Name, r.Skill, r.Importance, r.Category, r.Weight, r.IsRequired, r.Difficulty,
			); err != nil {
				return err
			}
		}

		for _, k := range c.Keywords {
			if _, err := tx.Exec(ctx, `
INSERT INTO career_keywords (id, career_id, keyword, frequency, importance)
SELECT gen_random_uuid(), c.id, $2, $3, $4
FROM careers c WHERE c.name = $1
ON CONFLICT (career_id, keyword) DO NOTHING`,
				c.Name, k.Keyword, k.Frequency, k.Importance,
			); err != nil {
				return err
			}
		}
	}

	for canonical, aliases := range defaultSynonyms() {
		if _, err := tx.Exec(ctx,
			`INSERT INTO skills (id, name) VALUES (gen_random_uuid(), $1) ON CONFLICT (name) DO NOTHING`,
			canonical,
		); err != nil {
			return err
		}
		for _, alias := range aliases {
			if _, err := tx.Exec(ctx, `
INSERT INTO skill_synonyms (id, skill_id, alias)
SELECT gen_random_uuid(), s.id, $2 FROM skills s WHERE s.name = $1
ON CONFLICT (skill_id, alias) DO NOTHING`,
				canonical, alias,
			); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func defaultCareers() []careerSeed {
	return []careerSeed{
		{
			Name:          "Data Scientist",
			Description:   "Builds statistical and machine learning models to extract insight from data, covering analysis, experimentation and predictive modeling.",
			BaseSalary:    95000,
			MinExperience: 2,
			MaxExperience: 12,
			Requirements: []requirementSeed{
				{Skill: "Python", Importance: 10, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Beginner"},
				{Skill: "SQL", Importance: 9, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Machine Learning", Importance: 9, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Advanced"},
				{Skill: "Statistics", Importance: 8, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Data Visualization", Importance: 7, Category: "intermediate", Weight: 0.7, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Pandas", Importance: 7, Category: "intermediate", Weight: 0.7, IsRequired: true, Difficulty: "Beginner"},
				{Skill: "NumPy", Importance: 6, Category: "intermediate", Weight: 0.7, IsRequired: false, Difficulty: "Beginner"},
				{Skill: "TensorFlow", Importance: 5, Category: "supporting", Weight: 0.4, IsRequired: false, Difficulty: "Advanced"},
				{Skill: "Jupyter", Importance: 4, Category: "supporting", Weight: 0.4, IsRequired: false, Difficulty: "Beginner"},
				{Skill: "Communication", Importance: 8, Category: "soft", Weight: 0.8, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Problem Solving", Importance: 9, Category: "soft", Weight: 0.9, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Critical Thinking", Importance: 8, Category: "soft", Weight: 0.8, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Teamwork", Importance: 7, Category: "soft", Weight: 0.7, IsRequired: false, Difficulty: "Intermediate"},
				{Skill: "Leadership", Importance: 6, Category: "soft", Weight: 0.6, IsRequired: false, Difficulty: "Intermediate"},
			},
			Keywords: []keywordSeed{
				{Keyword: "machine learning", Frequency: 0.9, Importance: 10},
				{Keyword: "statistics", Frequency: 0.8, Importance: 9},
				{Keyword: "python", Frequency: 0.9, Importance: 9},
				{Keyword: "modeling", Frequency: 0.6, Importance: 7},
				{Keyword: "analytics", Frequency: 0.7, Importance: 7},
				{Keyword: "experimentation", Frequency: 0.4, Importance: 5},
			},
		},
		{
			Name:          "Data Engineer",
			Description:   "Designs and operates data pipelines, warehouses and streaming systems that move and shape data reliably at scale.",
			BaseSalary:    98000,
			MinExperience: 2,
			MaxExperience: 10,
			Requirements: []requirementSeed{
				{Skill: "SQL", Importance: 10, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Python", Importance: 9, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "ETL", Importance: 9, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Spark", Importance: 8, Category: "intermediate", Weight: 0.7, IsRequired: true, Difficulty: "Advanced"},
				{Skill: "Airflow", Importance: 7, Category: "intermediate", Weight: 0.7, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "AWS", Importance: 7, Category: "intermediate", Weight: 0.7, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Kafka", Importance: 7, Category: "intermediate", Weight: 0.7, IsRequired: false, Difficulty: "Advanced"},
				{Skill: "Docker", Importance: 6, Category: "intermediate", Weight: 0.7, IsRequired: false, Difficulty: "Intermediate"},
				{Skill: "Linux", Importance: 5, Category: "supporting", Weight: 0.4, IsRequired: true, Difficulty: "Beginner"},
				{Skill: "Terraform", Importance: 5, Category: "supporting", Weight: 0.4, IsRequired: false, Difficulty: "Intermediate"},
				{Skill: "Communication", Importance: 7, Category: "soft", Weight: 0.7, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Problem Solving", Importance: 8, Category: "soft", Weight: 0.8, IsRequired: true, Difficulty: "Advanced"},
				{Skill: "Attention to Detail", Importance: 9, Category: "soft", Weight: 0.9, IsRequired: true, Difficulty: "Advanced"},
				{Skill: "Teamwork", Importance: 6, Category: "soft", Weight: 0.6, IsRequired: false, Difficulty: "Intermediate"},
			},
			Keywords: []keywordSeed{
				{Keyword: "data pipelines", Frequency: 0.9, Importance: 10},
				{Keyword: "etl", Frequency: 0.8, Importance: 9},
				{Keyword: "warehousing", Frequency: 0.6, Importance: 7},
				{Keyword: "streaming", Frequency: 0.5, Importance: 6},
				{Keyword: "sql", Frequency: 0.8, Importance: 8},
			},
		},
		{
			Name:          "Machine Learning Engineer",
			Description:   "Takes machine learning models to production, owning training infrastructure, deployment, monitoring and the surrounding tooling.",
			BaseSalary:    110000,
			MinExperience: 3,
			MaxExperience: 15,
			Requirements: []requirementSeed{
				{Skill: "Python", Importance: 10, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Machine Learning", Importance: 10, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Advanced"},
				{Skill: "Deep Learning", Importance: 9, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Advanced"},
				{Skill: "TensorFlow", Importance: 8, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Advanced"},
				{Skill: "MLOps", Importance: 8, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Advanced"},
				{Skill: "PyTorch", Importance: 7, Category: "intermediate", Weight: 0.7, IsRequired: false, Difficulty: "Advanced"},
				{Skill: "Docker", Importance: 7, Category: "intermediate", Weight: 0.7, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Kubernetes", Importance: 6, Category: "intermediate", Weight: 0.7, IsRequired: false, Difficulty: "Advanced"},
				{Skill: "Git", Importance: 6, Category: "supporting", Weight: 0.4, IsRequired: true, Difficulty: "Beginner"},
				{Skill: "Linux", Importance: 5, Category: "supporting", Weight: 0.4, IsRequired: false, Difficulty: "Beginner"},
				{Skill: "Communication", Importance: 7, Category: "soft", Weight: 0.7, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Problem Solving", Importance: 9, Category: "soft", Weight: 0.9, IsRequired: true, Difficulty: "Advanced"},
				{Skill: "Research Skills", Importance: 8, Category: "soft", Weight: 0.8, IsRequired: true, Difficulty: "Advanced"},
				{Skill: "Creativity", Importance: 6, Category: "soft", Weight: 0.6, IsRequired: false, Difficulty: "Intermediate"},
			},
			Keywords: []keywordSeed{
				{Keyword: "model deployment", Frequency: 0.8, Importance: 9},
				{Keyword: "deep learning", Frequency: 0.8, Importance: 9},
				{Keyword: "mlops", Frequency: 0.7, Importance: 8},
				{Keyword: "production", Frequency: 0.6, Importance: 7},
				{Keyword: "training", Frequency: 0.5, Importance: 6},
			},
		},
		{
			Name:          "Software Engineer",
			Description:   "Designs, builds and tests software systems, from data structures and algorithms through APIs and services.",
			BaseSalary:    85000,
			MinExperience: 1,
			MaxExperience: 12,
			Requirements: []requirementSeed{
				{Skill: "Python", Importance: 9, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Beginner"},
				{Skill: "Java", Importance: 8, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "JavaScript", Importance: 8, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Beginner"},
				{Skill: "SQL", Importance: 7, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Data Structures", Importance: 9, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Algorithms", Importance: 9, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "REST APIs", Importance: 7, Category: "intermediate", Weight: 0.7, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Docker", Importance: 6, Category: "intermediate", Weight: 0.7, IsRequired: false, Difficulty: "Intermediate"},
				{Skill: "Git", Importance: 7, Category: "supporting", Weight: 0.4, IsRequired: true, Difficulty: "Beginner"},
				{Skill: "Testing", Importance: 6, Category: "supporting", Weight: 0.4, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Communication", Importance: 8, Category: "soft", Weight: 0.8, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Problem Solving", Importance: 9, Category: "soft", Weight: 0.9, IsRequired: true, Difficulty: "Advanced"},
				{Skill: "Teamwork", Importance: 7, Category: "soft", Weight: 0.7, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Time Management", Importance: 6, Category: "soft", Weight: 0.6, IsRequired: false, Difficulty: "Intermediate"},
			},
			Keywords: []keywordSeed{
				{Keyword: "software", Frequency: 0.9, Importance: 9},
				{Keyword: "apis", Frequency: 0.7, Importance: 8},
				{Keyword: "algorithms", Frequency: 0.6, Importance: 8},
				{Keyword: "microservices", Frequency: 0.5, Importance: 6},
				{Keyword: "testing", Frequency: 0.5, Importance: 6},
			},
		},
		{
			Name:          "Data Analyst",
			Description:   "Turns raw data into reports, dashboards and recommendations through querying, cleaning and visualization.",
			BaseSalary:    70000,
			MinExperience: 1,
			MaxExperience: 10,
			Requirements: []requirementSeed{
				{Skill: "SQL", Importance: 10, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Beginner"},
				{Skill: "Statistics", Importance: 8, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Python", Importance: 7, Category: "core", Weight: 1.0, IsRequired: true, Difficulty: "Beginner"},
				{Skill: "Excel", Importance: 8, Category: "intermediate", Weight: 0.7, IsRequired: true, Difficulty: "Beginner"},
				{Skill: "Data Visualization", Importance: 8, Category: "intermediate", Weight: 0.7, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Tableau", Importance: 7, Category: "intermediate", Weight: 0.7, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Power BI", Importance: 6, Category: "intermediate", Weight: 0.7, IsRequired: false, Difficulty: "Intermediate"},
				{Skill: "Data Cleaning", Importance: 6, Category: "supporting", Weight: 0.4, IsRequired: true, Difficulty: "Beginner"},
				{Skill: "Communication", Importance: 8, Category: "soft", Weight: 0.8, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Business Acumen", Importance: 7, Category: "soft", Weight: 0.7, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Critical Thinking", Importance: 7, Category: "soft", Weight: 0.7, IsRequired: true, Difficulty: "Intermediate"},
				{Skill: "Presentation Skills", Importance: 6, Category: "soft", Weight: 0.6, IsRequired: false, Difficulty: "Intermediate"},
			},
			Keywords: []keywordSeed{
				{Keyword: "dashboards", Frequency: 0.8, Importance: 9},
				{Keyword: "reporting", Frequency: 0.7, Importance: 8},
				{Keyword: "sql", Frequency: 0.8, Importance: 8},
				{Keyword: "visualization", Frequency: 0.7, Importance: 7},
				{Keyword: "insights", Frequency: 0.5, Importance: 6},
			},
		},
	}
}

func defaultSynonyms() map[string][]string {
	return map[string][]string{
		"Python":             {"py", "python3"},
		"SQL":                {"mysql", "postgresql", "sqlite", "database"},
		"Java":               {"jdk", "jvm"},
		"JavaScript":         {"js", "es6", "ecmascript"},
		"Machine Learning":   {"ml", "artificial intelligence", "predictive modeling"},
		"Deep Learning":      {"neural networks", "cnn", "rnn"},
		"Statistics":         {"stats", "statistical analysis", "hypothesis testing"},
		"Data Visualization": {"visualization", "viz", "matplotlib", "seaborn"},
		"Pandas":             {"dataframe", "data manipulation"},
		"NumPy":              {"np", "numerical computing"},
		"TensorFlow":         {"tf", "keras"},
		"PyTorch":            {"torch"},
		"Docker":             {"containers", "containerization"},
		"Kubernetes":         {"k8s"},
		"AWS":                {"amazon web services"},
		"Git":                {"version control", "github"},
		"REST APIs":          {"rest", "api design", "apis"},
		"ETL":                {"data pipelines", "data integration"},
		"Excel":              {"spreadsheets"},
		"Power BI":           {"powerbi"},
		"Spark":              {"apache spark", "pyspark"},
		"Kafka":              {"apache kafka"},
		"Airflow":            {"apache airflow"},
		"Communication":      {"communication skills"},
		"Problem Solving":    {"problem-solving"},
	}
}
