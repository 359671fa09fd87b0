package dialog

// All user-facing replies are French. The robot always answers in French
// regardless of the language of the utterance.
const (
	promptSalleOrActivite = "Quelle salle ou quelle activite souhaitez-vous reserver ?"
	promptJour            = "Pour quel jour souhaitez-vous reserver ?"
	promptHeure           = "A quelle heure souhaitez-vous reserver ?"

	msgNoAvailabilityActivity = "Désolé, aucune salle n'est disponible pour %s le %s à %s. Voulez-vous essayer un autre créneau ?"
	msgChooseSalle            = "Il y a %d salles disponibles pour %s le %s à %s : %s. Laquelle préférez-vous ?"
	msgChoiceNotUnderstood    = "Je n'ai pas compris votre choix. Les salles disponibles sont : %s. Laquelle choisissez-vous ?"
	msgSalleNotFound          = "Désolé, je ne trouve pas la salle '%s' dans notre système. Pouvez-vous vérifier le nom ?"
	msgRoomBooked             = "Désolé, la salle %s est déjà réservée le %s de %s à %s. Voulez-vous essayer un autre créneau ou une autre salle ?"
	msgConfirmed              = "Parfait ! Je confirme votre réservation de la salle %s%s le %s de %s à %s. Souhaitez-vous autre chose ?"
	msgBookingFailed          = "Désolé, je n'ai pas pu enregistrer votre réservation. Pouvez-vous réessayer dans un instant ?"
	msgOutsideHours           = "Désolé, ce créneau est en dehors de nos horaires d'ouverture. %s A quelle heure souhaitez-vous reserver ?"

	msgNavigateIntro      = "Je vais vous guider vers %s. "
	msgUnknownPlace       = "Désolé, je ne connais pas cet endroit. Pouvez-vous reformuler ?"
	msgWhereTo            = "Où souhaitez-vous aller ? Vous pouvez me dire par exemple : salle A, salle B, natation..."
	msgActivityList       = "Nous proposons les activités suivantes : %s. Laquelle vous intéresse ?"
	msgActivityListEmpty  = "Nous proposons plusieurs activités. Laquelle vous intéresse ?"
	msgActivityInfo       = "L'activité %s est disponible. %s"
	msgActivityNotFound   = "Désolé, je n'ai pas trouvé d'informations sur l'activité %s."
	msgDialogueDown       = "Désolé, le système de dialogue n'est pas disponible pour le moment. Pouvez-vous reformuler ?"
)

// Rule-based fallbacks used when the language model is unavailable.
var fallbackRules = map[string][]string{
	"greeting": {
		"Bonjour ! Je peux vous aider pour les horaires, les inscriptions, les réservations ou pour vous orienter. Que souhaitez‑vous ?",
		"Salut ! Comment puis-je vous aider aujourd'hui ?",
		"Bonjour ! En quoi puis-je vous être utile pour votre visite à la salle multisports ?",
	},
	"ask_activities": {
		"Nous proposons fitness, basket, natation, tennis, futsal et yoga. Laquelle vous intéresse ?",
	},
}
