package models

// DiseaseSolution describes the recommended treatment for a rice disease.
type DiseaseSolution struct {
	ID       int64  `json:"id"`
	Disease  string `json:"disease"`
	Solution string `json:"solution"`
}

// DiseaseProduct is a purchasable product used against a rice disease.
type DiseaseProduct struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Disease string `json:"disease"`
	Link    string `json:"link"`
}
