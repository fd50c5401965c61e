package database

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"vidya_backend/internal/model"

	"gorm.io/gorm"
)

var chapterSlugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func chapterSlug(name string) string {
	return chapterSlugPattern.ReplaceAllString(strings.ToLower(name), "-")
}

type subjectTemplate struct {
	Name        string
	Description string
	Icon        string
}

var subjectTemplates = []subjectTemplate{
	{"Physics", "Physical Sciences", "⚛️"},
	{"Chemistry", "Chemical Sciences", "🧪"},
	{"Biology", "Life Sciences", "🧬"},
	{"Mathematics", "Mathematical Sciences", "📐"},
	{"English", "English Language and Literature", "📚"},
	{"Hindi", "Hindi Language and Literature", "📖"},
	{"History", "Historical Studies", "🏛️"},
	{"Geography", "Geographical Studies", "🌍"},
	{"Economics", "Economic Studies", "💰"},
	{"Computer Science", "Computer and Information Technology", "💻"},
}

type chapterTemplate struct {
	Name        string
	Description string
}

// Chapter templates keyed by lowercase subject name, then grade.
var chapterTemplates = map[string]map[int][]chapterTemplate{
	"physics": {
		9: {
			{"Motion", "Understanding motion, speed, velocity, and acceleration"},
			{"Force and Laws of Motion", "Newton's laws of motion and their applications"},
			{"Gravitation", "Universal law of gravitation and its effects"},
			{"Work and Energy", "Work, energy, and power concepts"},
			{"Sound", "Properties and characteristics of sound"},
		},
		10: {
			{"Light - Reflection and Refraction", "Properties of light and optical phenomena"},
			{"Electricity", "Electric current, potential, and circuits"},
			{"Magnetic Effects of Electric Current", "Electromagnetism and magnetic fields"},
			{"Sources of Energy", "Renewable and non-renewable energy sources"},
		},
		11: {
			{"Physical World and Measurement", "Fundamental concepts and units"},
			{"Kinematics", "Motion in one and two dimensions"},
			{"Laws of Motion", "Newton's laws and their applications"},
			{"Work, Energy and Power", "Energy conservation and power"},
			{"Motion of System of Particles", "Center of mass and rotational motion"},
		},
		12: {
			{"Electric Charges and Fields", "Electrostatics and electric fields"},
			{"Electrostatic Potential and Capacitance", "Electric potential and capacitors"},
			{"Current Electricity", "Electric current and resistance"},
			{"Moving Charges and Magnetism", "Magnetic fields and forces"},
			{"Electromagnetic Induction", "Faraday's law and electromagnetic induction"},
		},
	},
	"chemistry": {
		9: {
			{"Matter in Our Surroundings", "States of matter and their properties"},
			{"Atoms and Molecules", "Basic structure of atoms and molecules"},
			{"Structure of the Atom", "Atomic structure and electron configuration"},
		},
		10: {
			{"Chemical Reactions and Equations", "Types of chemical reactions"},
			{"Acids, Bases and Salts", "Properties and reactions of acids and bases"},
			{"Metals and Non-metals", "Properties and uses of metals and non-metals"},
			{"Carbon and its Compounds", "Organic chemistry basics"},
		},
		11: {
			{"Some Basic Concepts of Chemistry", "Fundamental concepts and calculations"},
			{"Structure of Atom", "Atomic models and quantum mechanics"},
			{"Classification of Elements", "Periodic table and periodicity"},
			{"Chemical Bonding", "Types of chemical bonds"},
		},
		12: {
			{"Solutions", "Types of solutions and colligative properties"},
			{"Electrochemistry", "Redox reactions and electrochemical cells"},
			{"Chemical Kinetics", "Rate of chemical reactions"},
			{"Surface Chemistry", "Adsorption and catalysis"},
		},
	},
	"mathematics": {
		9: {
			{"Number Systems", "Real numbers and their properties"},
			{"Polynomials", "Algebraic expressions and polynomials"},
			{"Coordinate Geometry", "Cartesian plane and coordinate systems"},
			{"Linear Equations in Two Variables", "Solving linear equations with two variables"},
		},
		10: {
			{"Real Numbers", "Properties of real numbers"},
			{"Polynomials", "Polynomial functions and their properties"},
			{"Pair of Linear Equations", "Systems of linear equations"},
			{"Quadratic Equations", "Solving quadratic equations"},
		},
		11: {
			{"Sets", "Set theory and operations"},
			{"Relations and Functions", "Mathematical relations and functions"},
			{"Trigonometric Functions", "Trigonometry and its applications"},
			{"Principle of Mathematical Induction", "Proof techniques"},
		},
		12: {
			{"Relations and Functions", "Advanced function concepts"},
			{"Inverse Trigonometric Functions", "Inverse trig functions and their properties"},
			{"Matrices", "Matrix operations and applications"},
			{"Determinants", "Determinants and their properties"},
		},
	},
}

// SeedCurriculum inserts the default board/class/subject/chapter tree when
// the boards table is empty. IDs are deterministic so reseeding an empty
// database always produces the same tree.
func SeedCurriculum(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Board{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	boards := []model.Board{
		{UUIDBase: model.UUIDBase{ID: "board-cbse"}, Name: "CBSE", Description: "Central Board of Secondary Education", IsActive: true},
		{UUIDBase: model.UUIDBase{ID: "board-icse"}, Name: "ICSE", Description: "Indian Certificate of Secondary Education", IsActive: true},
		{UUIDBase: model.UUIDBase{ID: "board-state"}, Name: "State Board", Description: "State Education Board", IsActive: true},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&boards).Error; err != nil {
			return err
		}

		for _, board := range boards {
			for grade := 1; grade <= 12; grade++ {
				classID := fmt.Sprintf("%s-class-%d", board.ID, grade)
				class := model.Class{
					UUIDBase:    model.UUIDBase{ID: classID},
					BoardID:     board.ID,
					ClassNumber: grade,
					IsActive:    true,
				}
				if err := tx.Create(&class).Error; err != nil {
					return err
				}

				for _, st := range subjectTemplates {
					subjectID := fmt.Sprintf("%s-%s", classID, strings.ReplaceAll(strings.ToLower(st.Name), " ", "-"))
					subject := model.Subject{
						UUIDBase:    model.UUIDBase{ID: subjectID},
						ClassID:     classID,
						Name:        st.Name,
						Description: st.Description,
						Icon:        st.Icon,
						IsActive:    true,
					}
					if err := tx.Create(&subject).Error; err != nil {
						return err
					}

					grades, ok := chapterTemplates[strings.ToLower(st.Name)]
					if !ok {
						continue
					}
					for i, ct := range grades[grade] {
						chapter := model.Chapter{
							UUIDBase:      model.UUIDBase{ID: fmt.Sprintf("%s-%s", subjectID, chapterSlug(ct.Name))},
							SubjectID:     subjectID,
							Name:          ct.Name,
							Description:   ct.Description,
							ChapterNumber: i + 1,
							IsActive:      true,
						}
						if err := tx.Create(&chapter).Error; err != nil {
							return err
						}
					}
				}
			}
		}

		log.Println("Curriculum seed data inserted")
		return nil
	})
}
