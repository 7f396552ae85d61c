package mail

import (
	"fmt"
	"strings"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
)

func applicationEmailBody(influencer *entities.Influencer) string {
	followers := "não informado"
	if influencer.Followers != nil && *influencer.Followers != "" {
		followers = *influencer.Followers
	}

	return fmt.Sprintf(`
		<html>
		<body>
			<h2>Nova candidatura no GM Faces</h2>
			<p><strong>Nome:</strong> %s</p>
			<p><strong>Cidade:</strong> %s</p>
			<p><strong>Nichos:</strong> %s (principal: %s)</p>
			<p><strong>Seguidores:</strong> %s</p>
			<p><strong>Bio:</strong> %s</p>
			<br>
			<p>Acesse o painel administrativo para revisar e publicar o perfil.</p>
		</body>
		</html>
	`,
		influencer.Name,
		influencer.City,
		strings.Join(influencer.Niche.Niches, ", "),
		influencer.Niche.MainNiche,
		followers,
		influencer.Bio,
	)
}
