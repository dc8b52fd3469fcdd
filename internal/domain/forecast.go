package domain

import "time"

// ForecastResult agrega a receita esperada em horizontes de 30/60/90 dias,
// com score de confiança e quebras categóricas. Valores monetários são
// arredondados para o inteiro mais próximo apenas no fim do cálculo.
type ForecastResult struct {
	Revenue30           float64           `json:"revenue_30"`
	Revenue60           float64           `json:"revenue_60"`
	Revenue90           float64           `json:"revenue_90"`
	ExpectedCommissions float64           `json:"expected_commissions"`
	ExpectedInstalls    ExpectedInstalls  `json:"expected_installs"`
	Confidence          int               `json:"confidence"` // 0-100
	Breakdown           ForecastBreakdown `json:"breakdown"`
}

// ExpectedInstalls conta instalações previstas por horizonte. O contador de
// 60 dias usa um sub-limite de 45 dias, mais conservador que o bucket de
// receita de 60 dias.
type ExpectedInstalls struct {
	Within30 int `json:"within_30"`
	Within60 int `json:"within_60"`
}

// ForecastBreakdown são visões categóricas independentes sobre o mesmo
// total de receita esperada: cada lead/projeto aparece em exatamente um
// bucket de cada mapa.
//
// ByStage compartilha chaves de status de lead (NEW, QUALIFIED...) e ids de
// estágio de projeto (SITE_SURVEY...). No vocabulário padrão não há colisão,
// mas um estágio customizado com o mesmo nome de um status de lead teria os
// valores somados no mesmo bucket.
type ForecastBreakdown struct {
	ByStage    map[string]float64 `json:"by_stage"`
	ByRep      map[string]float64 `json:"by_rep"`
	ByPriority map[string]float64 `json:"by_priority"`
}

// ForecastSnapshot é uma fotografia diária do forecast por tenant, usada
// para acompanhar tendência. No máximo uma entrada por tenant por dia.
type ForecastSnapshot struct {
	ID         int64     `json:"id"`
	TenantID   string    `json:"tenant_id"`
	Date       time.Time `json:"date"`
	Revenue30  float64   `json:"revenue_30"`
	Revenue60  float64   `json:"revenue_60"`
	Revenue90  float64   `json:"revenue_90"`
	Confidence int       `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}
