// Package prompt assembles the instruction strings sent to the generative
// model. Builders are pure functions over the concatenated transcript text.
package prompt

import (
	"fmt"
	"strings"

	"ytinsight/models"
)

// MaxChars bounds the transcript text embedded in any prompt.
const MaxChars = 12000

const truncationMarker = "\n\n[Tronqué à cause de la taille maximale]"

// System roles paired with each builder.
const (
	RoleSummary            = "Tu es un assistant de résumé vidéo YouTube multilingue."
	RoleKeyMoments         = "Tu es un expert en analyse vidéo qui identifie les moments clés."
	RoleEnhancedTranscript = "Tu es un expert en rédaction qui améliore la qualité des transcriptions."
	RoleTopComments        = "Tu es un expert en analyse de contenu social qui comprend les dynamiques des commentaires YouTube."
)

// JoinSegments concatenates segment texts with single spaces, preserving
// video chronology.
func JoinSegments(segments []models.TranscriptSegment) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		parts = append(parts, segment.Text)
	}
	return strings.Join(parts, " ")
}

// Truncate cuts text to MaxChars characters and appends the truncation
// marker. Text at or under the limit passes through unchanged.
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxChars {
		return text
	}
	return string(runes[:MaxChars]) + truncationMarker
}

const summaryTemplate = `Tu es un assistant intelligent. Résume le contenu suivant, qui est une transcription brute d'une vidéo YouTube.

Ta mission :
- Résume uniquement en français
- Formate en **bullet points clairs** avec des titres en gras
- Pas d'introduction, pas de conclusion, pas de traduction en anglais
- Garde uniquement les informations utiles
- Utilise **le style Markdown** :
  - Exemple :
    - **Sujet :** Contenu
    - **Sujet 2 :** Autre contenu

Voici la transcription :
%s`

// Summary builds the French bullet-point summary prompt.
func Summary(transcript string) string {
	return fmt.Sprintf(summaryTemplate, transcript)
}

const keyMomentsTemplate = `Analyse cette transcription de vidéo YouTube et identifie les moments clés importants.

Instructions spécifiques :
1. Identifie 5-8 moments clés de la vidéo
2. Pour chaque moment :
   - Donne un titre descriptif concis en français
   - Explique brièvement pourquoi ce moment est important
3. Formate la sortie en JSON avec la structure suivante :
   {
     "keyMoments": [
       {
         "title": "Titre du moment",
         "description": "Description courte",
         "importance": "Pourquoi ce moment est important"
       }
     ]
   }

Transcription :
%s`

// KeyMoments builds the chronological key-moments prompt. The model is asked
// for structured JSON with a keyMoments array.
func KeyMoments(transcript string) string {
	return fmt.Sprintf(keyMomentsTemplate, transcript)
}

const enhancedTranscriptTemplate = `Améliore cette transcription brute de vidéo YouTube pour la rendre plus lisible et professionnelle.

Instructions spécifiques :
1. Corrige la grammaire et la ponctuation en français
2. Organise le texte en paragraphes logiques
3. Ajoute des marqueurs de structure (introduction, développement, conclusion)
4. Conserve le sens original mais améliore la clarté
5. Formate la sortie en JSON avec cette structure :
   {
     "enhancedTranscript": "Le texte amélioré",
     "sections": ["Liste des sections principales"],
     "readabilityScore": "Score de lisibilité sur 10"
   }

Transcription originale :
%s`

// EnhancedTranscript builds the readability-improvement prompt.
func EnhancedTranscript(transcript string) string {
	return fmt.Sprintf(enhancedTranscriptTemplate, transcript)
}

const topCommentsTemplate = `En te basant sur le contenu de cette vidéo, génère et analyse des commentaires pertinents.

Instructions spécifiques :
1. Génère 5 commentaires réalistes qui pourraient apparaître sous cette vidéo, en français
2. Pour chaque commentaire :
   - Crée un nom d'utilisateur réaliste
   - Ajoute un nombre de likes plausible
   - Évalue sa pertinence
3. Formate la sortie en JSON avec cette structure :
   {
     "topComments": [
       {
         "username": "nom_utilisateur",
         "comment": "texte du commentaire",
         "likes": nombre_de_likes,
         "relevance": "score de pertinence sur 10"
       }
     ],
     "analysisInsights": "aperçu global des réactions"
   }

Contenu de la vidéo :
%s`

// TopComments builds the synthetic comment-analysis prompt.
func TopComments(transcript string) string {
	return fmt.Sprintf(topCommentsTemplate, transcript)
}
