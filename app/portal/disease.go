package portal

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// PestAlert is a static advisory entry shown on the pest board.
type PestAlert struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

var pestAlerts = []PestAlert{
	{Name: "Armyworm", Icon: "🐛", Description: "Larva feeds on leaves, causing severe damage"},
	{Name: "Leaf Folder", Icon: "🦗", Description: "Larvae fold leaves and feed inside"},
	{Name: "Brown Planthopper", Icon: "🐝", Description: "Sucks plant sap, transmits virus diseases"},
	{Name: "Blast Disease", Icon: "🍂", Description: "Fungal disease affecting rice crops"},
	{Name: "Sheath Blight", Icon: "🦠", Description: "Fungal infection of rice plants"},
	{Name: "Bacterial Wilt", Icon: "☠️", Description: "Soil-borne disease affecting crops"},
}

func PestAlerts() []PestAlert {
	return pestAlerts
}

type Diagnosis struct {
	Name       string `json:"name"`
	Confidence int    `json:"confidence"`
	Treatment  string `json:"treatment"`
}

// DiseaseDetector is the disease-detection capability. Only the mock exists
// today; a real vision provider slots in behind the same interface.
type DiseaseDetector interface {
	Analyze(ctx context.Context, image []byte) (Diagnosis, error)
}

var mockDiagnoses = []Diagnosis{
	{Name: "Rice Blast", Confidence: 85, Treatment: "Use fungicide spray and improve drainage"},
	{Name: "Brown Leaf Spot", Confidence: 92, Treatment: "Apply copper-based fungicide"},
	{Name: "Healthy Plant", Confidence: 95, Treatment: "Continue regular care"},
}

// MockDiseaseDetector picks a random diagnosis from a fixed table.
type MockDiseaseDetector struct {
	rng *rand.Rand
}

func NewMockDiseaseDetector() *MockDiseaseDetector {
	return &MockDiseaseDetector{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (d *MockDiseaseDetector) Analyze(ctx context.Context, image []byte) (Diagnosis, error) {
	if len(image) == 0 {
		return Diagnosis{}, errors.New("analyze disease: empty image")
	}
	return mockDiagnoses[d.rng.Intn(len(mockDiagnoses))], nil
}
