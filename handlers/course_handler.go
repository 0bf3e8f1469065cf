package handlers

import "github.com/gofiber/fiber/v2"

type Subject struct {
	Name     string `json:"name"`
	Optional bool   `json:"optional,omitempty"`
}

type Course struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Subjects []Subject `json:"subjects"`
}

// Static senior-high course/subject reference table. Served read-only;
// edited in source, not in the database.
var courseSubjects = []Course{
	{
		ID:   "general-science",
		Name: "General Science",
		Subjects: []Subject{
			{Name: "Physics"},
			{Name: "Chemistry"},
			{Name: "Biology"},
			{Name: "Elective Mathematics"},
			{Name: "ICT"},
			{Name: "Core Mathematics"},
			{Name: "English Language"},
			{Name: "Social Studies"},
			{Name: "Integrated Science"},
		},
	},
	{
		ID:   "general-arts",
		Name: "General Arts",
		Subjects: []Subject{
			{Name: "Elective Mathematics", Optional: true},
			{Name: "Literature in English"},
			{Name: "Economics"},
			{Name: "Geography"},
			{Name: "Government"},
			{Name: "History"},
			{Name: "CRS"},
			{Name: "English Language"},
			{Name: "Core Mathematics"},
			{Name: "Social Studies"},
			{Name: "Integrated Science"},
		},
	},
	{
		ID:   "business",
		Name: "Business",
		Subjects: []Subject{
			{Name: "Accounting"},
			{Name: "Business Management"},
			{Name: "Economics"},
			{Name: "Cost Accounting", Optional: true},
			{Name: "Elective Mathematics"},
			{Name: "English Language"},
			{Name: "Core Mathematics"},
			{Name: "Social Studies"},
			{Name: "Integrated Science"},
		},
	},
	{
		ID:   "home-economics",
		Name: "Home Economics",
		Subjects: []Subject{
			{Name: "Management-in-Living"},
			{Name: "Food & Nutrition"},
			{Name: "Clothing & Textiles"},
			{Name: "Biology", Optional: true},
			{Name: "Elective Mathematics", Optional: true},
			{Name: "English Language"},
			{Name: "Core Mathematics"},
			{Name: "Social Studies"},
			{Name: "Integrated Science"},
		},
	},
}

func ListCourses(c *fiber.Ctx) error {
	return c.JSON(courseSubjects)
}

func GetCourseSubjects(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	for _, course := range courseSubjects {
		if course.ID == courseID {
			return c.JSON(fiber.Map{
				"course_id": course.ID,
				"subjects":  course.Subjects,
			})
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
}
