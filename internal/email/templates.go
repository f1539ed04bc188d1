package email

import "fmt"

func ProposalAccepted(jobTitle string, amount float64) Message {
	return Message{
		Subject: "Your proposal was accepted",
		Body: fmt.Sprintf(
			"Congratulations! Your proposal for %q was accepted. "+
				"A contract for %.2f has been created and the funds are held in escrow.",
			jobTitle, amount),
	}
}

func EscrowReleased(jobTitle string, amount float64) Message {
	return Message{
		Subject: "Escrow released",
		Body: fmt.Sprintf(
			"The escrow of %.2f for %q has been released to your available balance.",
			amount, jobTitle),
	}
}

func AccountVerified() Message {
	return Message{
		Subject: "Account verified",
		Body:    "Your account has been verified. You can now submit proposals.",
	}
}
