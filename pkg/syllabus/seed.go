package syllabus

import "tableflip.dev/swot/pkg/timeutil"

// seedSubject is one entry of the built-in syllabus.
type seedSubject struct {
	category Category
	topics   []string
}

// defaultSeed is the PAU master guide syllabus used when no stored data
// exists or the stored document cannot be recovered.
var defaultSeed = map[string]seedSubject{
	"Matemáticas II": {CategoryScience, []string{
		"Matrices", "Rango y Inversa", "Determinantes", "Sistemas (Rouché)",
		"Límites & Continuidad", "Derivadas", "Aplic. Derivada (Optimiz.)",
		"Integrales", "Geometría Espacial", "Probabilidad",
	}},
	"Física": {CategoryScience, []string{
		"Gravitación (Kepler)", "Campo Eléctrico", "Campo Magnético",
		"Inducción", "Ondas Mecánicas", "Óptica Geométrica",
		"Física S.XX (Relatividad/Cuántica)",
	}},
	"Química": {CategoryScience, []string{
		"Estructura Atómica", "Enlace Químico", "Cinética",
		"Equilibrio Químico", "Ácido-Base", "Redox", "Orgánica",
	}},
	"Tecnología e Ing.": {CategoryScience, []string{
		"Materiales", "Máquinas Térmicas", "Fluidos (Neumática)",
		"Sistemas Automáticos", "Electrónica Digital",
	}},
	"Historia de España": {CategoryMemory, []string{
		"Raíces (Prehistoria-S.XVIII)", "S.XIX: Crisis A.R.",
		"S.XIX: Estado Liberal", "S.XX: Alfonso XIII/Primo",
		"S.XX: II República/Guerra", "S.XX: Franquismo", "Transición",
	}},
	"Hª Filosofía": {CategoryMemory, []string{
		"Platón", "Aristóteles", "Tomás de Aquino", "Descartes", "Hume",
		"Rousseau", "Kant", "Marx", "Nietzsche", "Ortega y Gasset",
	}},
	"Inglés": {CategorySkills, []string{
		"Tenses Mix", "Passive Voice", "Reported Speech", "Conditionals",
		"Writing: Opinion", "Writing: For/Against",
	}},
}

// Default builds the seeded repository: every syllabus topic locked, level 0,
// due today.
func Default(today timeutil.Date) *Repository {
	r := New()
	for name, seed := range defaultSeed {
		topics := make([]*Topic, 0, len(seed.topics))
		for _, topicName := range seed.topics {
			topics = append(topics, NewTopic(topicName, seed.category, today))
		}
		r.Subjects[name] = topics
	}
	return r
}
