package signature

import "testing"

func BenchmarkDerive(b *testing.B) {
	line := "2024-01-15 10:30:00 ERROR UNCAUGHT_ERROR path=/api/films/507f1f77bcf86cd799439011 request=3f2504e0-4f89-11d3-9a0c-0305e82c3301 at=1705314600000 stack=Error: boom\n    at handler (/app/src/routes/films.js:42:11)"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if Derive(line) == "" {
			b.Fatal("empty signature")
		}
	}
}
