package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

type CoursesSeeder struct{}

func (CoursesSeeder) Name() string { return "courses" }

type courseSeed struct {
	Skill         string
	Name          string
	Level         string
	Platform      string
	DurationHours int
	Rating        float64
	Price         float64
	Certificate   bool
	URL           string
}

func (CoursesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "courses", "id", "skill", "name", "level", "platform", "duration_hours", "rating", "price", "certificate", "url"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, c := range defaultCourses() {
		if _, err := tx.Exec(ctx, `
INSERT INTO courses (id, skill, name, level, platform, duration_hours, rating, price, certificate, url)
VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (skill, name, platform) DO NOTHING`,
			c.Skill, c.Name, c.Level, c.Platform, c.DurationHours, c.Rating, c.Price, c.Certificate, c.URL,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func defaultCourses() []courseSeed {
	return []courseSeed{
		{Skill: "Python", Name: "Python for Everybody", Level: "Beginner", Platform: "Coursera", DurationHours: 40, Rating: 4.8, Price: 49, Certificate: true, URL: "https://www.coursera.org/specializations/python"},
		{Skill: "Python", Name: "Complete Python Bootcamp", Level: "Beginner", Platform: "Udemy", DurationHours: 22, Rating: 4.6, Price: 15, Certificate: true, URL: "https://www.udemy.com/course/complete-python-bootcamp/"},
		{Skill: "Python", Name: "Intermediate Python", Level: "Intermediate", Platform: "DataCamp", DurationHours: 18, Rating: 4.5, Price: 29, Certificate: true, URL: "https://www.datacamp.com/courses/intermediate-python"},
		{Skill: "SQL", Name: "SQL for Data Science", Level: "Beginner", Platform: "Coursera", DurationHours: 20, Rating: 4.6, Price: 49, Certificate: true, URL: "https://www.coursera.org/learn/sql-for-data-science"},
		{Skill: "SQL", Name: "Advanced SQL for Analytics", Level: "Intermediate", Platform: "Udemy", DurationHours: 16, Rating: 4.5, Price: 15, Certificate: true, URL: "https://www.udemy.com/course/advanced-sql/"},
		{Skill: "Machine Learning", Name: "Machine Learning Specialization", Level: "Advanced", Platform: "Coursera", DurationHours: 60, Rating: 4.9, Price: 79, Certificate: true, URL: "https://www.coursera.org/specializations/machine-learning-introduction"},
		{Skill: "Machine Learning", Name: "Hands-On Machine Learning", Level: "Intermediate", Platform: "Udemy", DurationHours: 44, Rating: 4.6, Price: 19, Certificate: true, URL: "https://www.udemy.com/course/machine-learning-course/"},
		{Skill: "Statistics", Name: "Statistics with Python", Level: "Intermediate", Platform: "Coursera", DurationHours: 30, Rating: 4.5, Price: 49, Certificate: true, URL: "https://www.coursera.org/specializations/statistics-with-python"},
		{Skill: "Data Visualization", Name: "Data Visualization with Tableau", Level: "Intermediate", Platform: "Coursera", DurationHours: 24, Rating: 4.4, Price: 49, Certificate: true, URL: "https://www.coursera.org/specializations/data-visualization"},
		{Skill: "Pandas", Name: "Data Analysis with Pandas", Level: "Beginner", Platform: "DataCamp", DurationHours: 12, Rating: 4.5, Price: 29, Certificate: true, URL: "https://www.datacamp.com/courses/data-manipulation-with-pandas"},
		{Skill: "Deep Learning", Name: "Deep Learning Specialization", Level: "Advanced", Platform: "Coursera", DurationHours: 80, Rating: 4.9, Price: 79, Certificate: true, URL: "https://www.coursera.org/specializations/deep-learning"},
		{Skill: "TensorFlow", Name: "TensorFlow Developer Certificate", Level: "Advanced", Platform: "Coursera", DurationHours: 50, Rating: 4.7, Price: 59, Certificate: true, URL: "https://www.coursera.org/professional-certificates/tensorflow-in-practice"},
		{Skill: "MLOps", Name: "MLOps Fundamentals", Level: "Advanced", Platform: "Coursera", DurationHours: 35, Rating: 4.4, Price: 49, Certificate: true, URL: "https://www.coursera.org/learn/mlops-fundamentals"},
		{Skill: "Docker", Name: "Docker Mastery", Level: "Intermediate", Platform: "Udemy", DurationHours: 19, Rating: 4.7, Price: 15, Certificate: true, URL: "https://www.udemy.com/course/docker-mastery/"},
		{Skill: "Kubernetes", Name: "Kubernetes for Developers", Level: "Advanced", Platform: "Udemy", DurationHours: 14, Rating: 4.5, Price: 15, Certificate: true, URL: "https://www.udemy.com/course/kubernetes-for-developers/"},
		{Skill: "Spark", Name: "Big Data Analysis with Spark", Level: "Advanced", Platform: "Udemy", DurationHours: 21, Rating: 4.5, Price: 19, Certificate: true, URL: "https://www.udemy.com/course/spark-and-python-for-big-data/"},
		{Skill: "Airflow", Name: "Apache Airflow Bootcamp", Level: "Intermediate", Platform: "Udemy", DurationHours: 15, Rating: 4.4, Price: 15, Certificate: true, URL: "https://www.udemy.com/course/the-complete-hands-on-course-to-master-apache-airflow/"},
		{Skill: "Kafka", Name: "Apache Kafka Series", Level: "Advanced", Platform: "Udemy", DurationHours: 17, Rating: 4.6, Price: 15, Certificate: true, URL: "https://www.udemy.com/course/apache-kafka/"},
		{Skill: "AWS", Name: "AWS Certified Solutions Architect", Level: "Intermediate", Platform: "Udemy", DurationHours: 27, Rating: 4.7, Price: 19, Certificate: true, URL: "https://www.udemy.com/course/aws-certified-solutions-architect-associate/"},
		{Skill: "ETL", Name: "Data Warehousing and ETL", Level: "Intermediate", Platform: "Udemy", DurationHours: 20, Rating: 4.2, Price: 15, Certificate: false, URL: "https://www.udemy.com/course/data-warehouse-etl/"},
		{Skill: "Git", Name: "Git Complete", Level: "Beginner", Platform: "Udemy", DurationHours: 6, Rating: 4.6, Price: 12, Certificate: true, URL: "https://www.udemy.com/course/git-complete/"},
		{Skill: "Excel", Name: "Excel Skills for Business", Level: "Beginner", Platform: "Coursera", DurationHours: 25, Rating: 4.8, Price: 49, Certificate: true, URL: "https://www.coursera.org/specializations/excel"},
		{Skill: "Tableau", Name: "Tableau A-Z", Level: "Intermediate", Platform: "Udemy", DurationHours: 9, Rating: 4.6, Price: 15, Certificate: true, URL: "https://www.udemy.com/course/tableau10/"},
		{Skill: "Communication", Name: "Effective Communication at Work", Level: "Beginner", Platform: "LinkedIn Learning", DurationHours: 4, Rating: 4.1, Price: 0, Certificate: false, URL: "https://www.linkedin.com/learning/effective-communication"},
		{Skill: "Problem Solving", Name: "Structured Problem Solving", Level: "Intermediate", Platform: "LinkedIn Learning", DurationHours: 3, Rating: 4.2, Price: 0, Certificate: false, URL: "https://www.linkedin.com/learning/problem-solving-techniques"},
		{Skill: "Leadership", Name: "Leadership Foundations", Level: "Advanced", Platform: "LinkedIn Learning", DurationHours: 5, Rating: 4.3, Price: 0, Certificate: false, URL: "https://www.linkedin.com/learning/leadership-foundations"},
		{Skill: "Java", Name: "Java Programming Masterclass", Level: "Intermediate", Platform: "Udemy", DurationHours: 80, Rating: 4.6, Price: 19, Certificate: true, URL: "https://www.udemy.com/course/java-the-complete-java-developer-course/"},
		{Skill: "JavaScript", Name: "The Complete JavaScript Course", Level: "Beginner", Platform: "Udemy", DurationHours: 69, Rating: 4.7, Price: 19, Certificate: true, URL: "https://www.udemy.com/course/the-complete-javascript-course/"},
		{Skill: "Data Structures", Name: "Data Structures and Algorithms", Level: "Intermediate", Platform: "Coursera", DurationHours: 40, Rating: 4.7, Price: 49, Certificate: true, URL: "https://www.coursera.org/specializations/data-structures-algorithms"},
		{Skill: "Algorithms", Name: "Algorithms Part I", Level: "Intermediate", Platform: "Coursera", DurationHours: 54, Rating: 4.9, Price: 0, Certificate: false, URL: "https://www.coursera.org/learn/algorithms-part1"},
	}
}
