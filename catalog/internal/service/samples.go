package service

import (
	"github.com/madhuraks/ecobazaar/catalog/pkg/response"
)

var sampleSearches = []response.SampleSearch{
	{Text: "दस रुपये के अंदर साबुन", Translation: "Soap under 10 rupees", Budget: "10"},
	{
		Text:        "ಐನೂರು ರೂಪಾಯಿ ಕೆಳಗೆ ಇಕೋ ಫ್ರೆಂಡ್ಲಿ ಪ್ರಾಡಕ್ಟ್",
		Translation: "Eco-friendly products under 500",
		Budget:      "500",
	},
	{Text: "सौ रुपये में बाल तेल", Translation: "Hair oil under 100 rupees", Budget: "100"},
	{Text: "ಇನ್ನೂರು ರೂಪಾಯಿ ಕೆಳಗೆ ಮುಖದ ಕ್ರೀಮ್", Translation: "Face cream under 200", Budget: "200"},
	{Text: "पचास रुपये में टूथब्रश", Translation: "Toothbrush under 50 rupees", Budget: "50"},
	{Text: "तीन सौ रुपये में जैविक खाना", Translation: "Organic food under 300", Budget: "300"},
}
