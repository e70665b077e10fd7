package worksheet_test

import (
	"testing"

	"github.com/nobu-k/100-math-sub004/seed"
	"github.com/nobu-k/100-math-sub004/worksheet"
)

func BenchmarkTopics(b *testing.B) {
	reg := worksheet.Default()
	params := worksheet.Params{worksheet.ParamCount: "30"}
	for _, topic := range reg.Topics() {
		b.Run(topic.ID, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = topic.Generate(seed.Seed(i), params)
			}
		})
	}
}
