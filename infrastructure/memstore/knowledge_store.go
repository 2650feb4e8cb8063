package memstore

import "tailingsiq-backend/domain"

// KnowledgeStore holds the assistant's knowledge base. Entry order is load
// order and determines match precedence, so it is never reordered.
type KnowledgeStore struct {
	entries []domain.KnowledgeEntry
}

// NewKnowledgeStore creates the store seeded with the tailings knowledge
// base.
func NewKnowledgeStore() *KnowledgeStore {
	return &KnowledgeStore{
		entries: []domain.KnowledgeEntry{
			{
				Question: "What are tailings?",
				Answer:   "Tailings are the materials left over after the process of separating the valuable fraction from the uneconomic fraction of an ore. They consist of a mixture of water, sand, clay, and residual minerals and chemicals from the extraction process.",
			},
			{
				Question: "What is GISTM?",
				Answer:   "GISTM stands for Global Industry Standard on Tailings Management. It was developed through a collaborative process involving the International Council on Mining and Metals (ICMM), the United Nations Environment Programme (UNEP), and the Principles for Responsible Investment (PRI). It aims to prevent catastrophic failures and improve the safety of tailings facilities worldwide.",
			},
			{
				Question: "What are the key risks associated with tailings facilities?",
				Answer:   "Key risks include structural failure leading to dam breaches, seepage of contaminated water into groundwater, dust emissions affecting air quality, long-term stability issues, and impacts on local communities and ecosystems. Climate change factors like increased rainfall or drought can exacerbate these risks.",
			},
			{
				Question: "How often should tailings facilities be inspected?",
				Answer:   "According to best practices and standards like GISTM, tailings facilities should undergo routine inspections daily to weekly (depending on risk classification), formal inspections monthly to quarterly, comprehensive reviews annually, and independent reviews every 3-5 years. High-risk facilities require more frequent monitoring.",
			},
			{
				Question: "What monitoring technologies are used for tailings facilities?",
				Answer:   "Modern monitoring technologies include piezometers for measuring water pressure, inclinometers for detecting movement, satellite InSAR for surface deformation, drone surveys, real-time sensors, automated data collection systems, water quality monitoring, and weather stations. These technologies enable early detection of potential issues.",
			},
		},
	}
}

// Entries returns the knowledge base in match-precedence order.
func (s *KnowledgeStore) Entries() []domain.KnowledgeEntry {
	return s.entries
}
