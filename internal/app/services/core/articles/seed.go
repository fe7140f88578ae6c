package articles

import (
	"context"
	_ "embed"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/app/models"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

//go:embed seed/articles.json
var seedArticles []byte

func LoadSeedArticles() ([]*models.Article, error) {
	articles := make([]*models.Article, 0)
	if err := json.Unmarshal(seedArticles, &articles); err != nil {
		return nil, err
	}

	now := time.Now()
	for _, article := range articles {
		article.Touch(now)
	}
	return articles, nil
}

// SeedArticles inserts the bundled articles into an empty collection and
// returns how many were written. A non-empty collection is left untouched.
func SeedArticles(ctx context.Context, repo contracts.ArticleRepository, logger *zap.Logger) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Info("SeedArticles skipped, collection not empty", zap.Int64("existing", count))
		return 0, nil
	}

	articles, err := LoadSeedArticles()
	if err != nil {
		return 0, err
	}

	inserted, err := repo.InsertMany(ctx, articles)
	if err != nil {
		return 0, err
	}
	logger.Info("SeedArticles succeeded", zap.Int("inserted", inserted))
	return inserted, nil
}
