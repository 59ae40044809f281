package seeder

func Defaults() []Seeder {
	return []Seeder{
		CatalogSeeder{},
		CoursesSeeder{},
	}
}
