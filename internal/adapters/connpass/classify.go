package connpass

import (
	"strings"

	"confhub/internal/domain"
)

var techKeywords = map[string][]string{
	"フロントエンド": {"react", "vue", "angular", "next", "nuxt", "css", "html", "frontend", "フロントエンド", "svelte", "astro", "tailwind"},
	"バックエンド":  {"node", "go", "rust", "python", "java", "ruby", "rails", "backend", "バックエンド", "api", "graphql", "django", "spring", "laravel", "php"},
	"インフラ":    {"aws", "gcp", "azure", "docker", "kubernetes", "k8s", "terraform", "infrastructure", "インフラ", "sre", "devops", "cloud", "クラウド"},
	"AI・ML":   {"ai", "ml", "llm", "gpt", "machine learning", "機械学習", "生成ai", "deep learning", "chatgpt", "claude", "gemini", "人工知能"},
	"モバイル":    {"ios", "android", "swift", "kotlin", "flutter", "react native", "モバイル", "mobile"},
	"セキュリティ":  {"security", "セキュリティ", "owasp", "脆弱性", "サイバー", "cyber"},
	"データ":     {"data", "bigquery", "spark", "analytics", "データ分析", "データベース", "database", "sql", "etl"},
}

var roleKeywords = map[string][]string{
	"エンジニア": {"エンジニア", "engineer", "developer", "開発", "プログラ", "コード", "code", "tech"},
	"デザイナー": {"デザイン", "design", "ui", "ux", "figma", "sketch"},
	"PM":    {"プロダクトマネ", "product manager", "pm", "プロジェクトマネ"},
	"マーケター": {"マーケ", "market", "growth", "グロース"},
	"全般":    {"カンファレンス", "conference", "summit", "fest"},
}

// KeywordClassifier infers tags by substring-matching keyword tables against
// event text.
type KeywordClassifier struct{}

var _ domain.Classifier = KeywordClassifier{}

// ClassifyTech returns every tech category with at least one keyword hit.
// Emitted in the site's vocabulary order so results are deterministic.
func (KeywordClassifier) ClassifyTech(text string) []string {
	return matchKeywords(text, domain.TechCategories, techKeywords)
}

// ClassifyRoles returns every role with a keyword hit, falling back to 全般
// when nothing matches.
func (KeywordClassifier) ClassifyRoles(text string) []string {
	roles := matchKeywords(text, domain.TargetRoles, roleKeywords)
	if len(roles) == 0 {
		return []string{"全般"}
	}
	return roles
}

func matchKeywords(text string, order []string, tables map[string][]string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, tag := range order {
		for _, kw := range tables[tag] {
			if strings.Contains(lower, kw) {
				out = append(out, tag)
				break
			}
		}
	}
	return out
}
