package usecase

import (
	"fmt"
	"strings"

	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/utils"
)

const pickupLayout = "Mon 2 Jan 15:04"

func jobOfferMessage(b *models.Booking) string {
	var sb strings.Builder
	sb.WriteString("New job\n")
	fmt.Fprintf(&sb, "Pickup: %s\n", b.PickupLocation)
	fmt.Fprintf(&sb, "Drop-off: %s\n", b.DropoffLocation)
	fmt.Fprintf(&sb, "When: %s\n", b.PickupAt.Format(pickupLayout))
	fmt.Fprintf(&sb, "Passenger: %s (%d pax)\n", b.CustomerName, b.Passengers)
	fmt.Fprintf(&sb, "Vehicle: %s\n", b.VehicleClass)
	if notes := utils.StripMarker(b.Notes, models.PendingPaymentMarker); notes != "" {
		fmt.Fprintf(&sb, "Notes: %s\n", notes)
	}
	sb.WriteString("\nReply 1 to accept or 2 to decline.")
	return sb.String()
}

func jobConfirmedMessage(b *models.Booking) string {
	return fmt.Sprintf("Thanks, the job at %s is yours. Reply START when you are on your way to %s.",
		b.PickupAt.Format(pickupLayout), b.PickupLocation)
}

func jobDeclinedMessage() string {
	return "No problem, the job has been released. You are available for new work."
}

func jobStartedMessage(b *models.Booking) string {
	return fmt.Sprintf("Journey started. Reply DONE once %s has been dropped off.", b.CustomerName)
}

func jobCompletedMessage() string {
	return "Journey complete, thank you. You are available for new work."
}

func jobCancelledMessage(b *models.Booking) string {
	return fmt.Sprintf("The job at %s from %s has been cancelled. No action is needed.",
		b.PickupAt.Format(pickupLayout), b.PickupLocation)
}

func noActiveJobMessage() string {
	return "You have no active job right now. We will message you when one is assigned."
}

func repromptMessage(state models.ConversationState) string {
	switch state {
	case models.ConversationAwaitingAccept:
		return "Please reply 1 to accept the job or 2 to decline."
	case models.ConversationAwaitingStart:
		return "Reply START when you are on your way to the pickup."
	case models.ConversationInProgress:
		return "Reply DONE when the journey is complete."
	default:
		return noActiveJobMessage()
	}
}

func customerAssignedMessage(b *models.Booking, d *models.Driver) string {
	vehicle := strings.TrimSpace(d.VehicleMake + " " + d.VehicleModel)
	if vehicle == "" {
		vehicle = b.VehicleClass
	}
	msg := fmt.Sprintf("Hi %s, your driver for %s is %s (%s", b.CustomerName, b.PickupAt.Format(pickupLayout), d.Name, vehicle)
	if d.VehiclePlate != "" {
		msg += ", " + d.VehiclePlate
	}
	return msg + ")."
}

func customerStartedMessage(b *models.Booking, d *models.Driver) string {
	return fmt.Sprintf("Hi %s, %s is on the way to %s.", b.CustomerName, d.Name, b.PickupLocation)
}

func customerCompletedMessage(b *models.Booking) string {
	return fmt.Sprintf("Thank you for travelling with us, %s. We hope to see you again soon.", b.CustomerName)
}
