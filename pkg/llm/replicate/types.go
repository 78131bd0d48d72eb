package replicate

type createPredictionRequest struct {
	Version string          `json:"version"`
	Input   predictionInput `json:"input"`
}

type predictionInput struct {
	Prompt         string  `json:"prompt"`
	Image          string  `json:"image"`
	NegativePrompt string  `json:"negative_prompt"`
	NumSteps       int     `json:"num_inference_steps"`
	GuidanceScale  float64 `json:"guidance_scale"`
	PromptStrength float64 `json:"prompt_strength"`
}

type prediction struct {
	ID     string   `json:"id"`
	Status string   `json:"status"`
	Error  string   `json:"error"`
	Output []string `json:"output"`
}
