package config

import (
	"time"

	"FeedHarvester/internal/domain"
)

func defaultConfig() Config {
	return Config{
		Feeds: []string{
			"https://www.lemonde.fr/rss/une.xml",
			"https://www.lemonde.fr/international/rss_full.xml",
			"https://www.lemonde.fr/politique/rss_full.xml",
			"https://www.lemonde.fr/economie/rss_full.xml",
		},
		Harvest: HarvestConfig{
			FetchInterval:         time.Hour,
			MaxEntriesPerFeed:     intPtr(50),
			IncludeContent:        boolPtr(true),
			IncludeCategories:     boolPtr(true),
			IncludePublishDate:    boolPtr(true),
			ExtractFullContent:    boolPtr(true),
			FilterByKeywords:      boolPtr(true),
			KeywordScoreThreshold: intPtr(1),
			Concurrency:           8,
		},
		HTTP: HTTPConfig{
			UserAgent: "FeedHarvester/1.0",
			Timeout:   20 * time.Second,
		},
		Output: OutputConfig{
			Dir:        "output",
			DataFile:   "ai_training_data.jsonl",
			ReportFile: "rapport.txt",
		},
		Logging: LoggingConfig{Level: "info"},
		Archive: ArchiveConfig{Table: "harvested_articles"},
		Sites: []domain.SiteProfile{
			{
				Name:               "lemonde.fr",
				ArticleSelectors:   []string{"article", ".article__content", ".article__body", "main"},
				ParagraphSelector:  "p",
				MinParagraphLength: 50,
			},
			{
				Name:               "nouvelobs.com",
				ArticleSelectors:   []string{".article-body", ".obs-article-body", "article"},
				ParagraphSelector:  "p",
				MinParagraphLength: 50,
			},
		},
		DefaultSite: domain.SiteProfile{
			Name:               "default",
			ArticleSelectors:   []string{"article", ".article", ".content", ".post-content", "main", ".entry-content"},
			ParagraphSelector:  "p",
			MinParagraphLength: 40,
		},
		Keywords: Taxonomy{
			{Name: "technology", Keywords: []string{
				"technologie émergente",
				"innovation locale",
				"startups émergentes",
				"inclusion numérique",
				"fintech émergente",
				"agritech",
				"énergie solaire",
				"mobile banking",
				"e-commerce",
				"connectivité rurale",
			}},
			{Name: "politics", Keywords: []string{
				"démocratie émergente",
				"élections locales",
				"gouvernance régionale",
				"union continentale",
				"intégration régionale",
				"souveraineté nationale",
				"diplomatie Sud-Sud",
				"indépendance économique",
				"politique panafricaine",
			}},
			{Name: "economy", Keywords: []string{
				"croissance économique",
				"libre-échange continental",
				"développement durable",
				"investissement émergent",
				"commerce intracontinental",
				"ressources naturelles",
				"industrialisation émergente",
				"entrepreneuriat local",
				"diaspora économique",
				"microfinance",
			}},
			{Name: "culture", Keywords: []string{
				"héritage culturel",
				"langues locales",
				"art contemporain",
				"musique traditionnelle",
				"littérature postcoloniale",
				"cinéma émergent",
				"traditions locales",
				"afrofuturisme",
				"décolonisation culturelle",
				"patrimoine mondial",
			}},
		},
	}
}
