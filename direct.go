package hush

import (
	"github.com/codahale/hush/internal/transcode"
)

// DirectMessage is a message encrypted twice: once for the recipient and once for the sender.
//
// Each copy uses its own ephemeral key pair and its own nonce, so the sender can decrypt their sent
// history with their identity key without retaining any ephemeral private keys.
type DirectMessage struct {
	EncryptedData            string `json:"encryptedData"`
	Nonce                    string `json:"nonce"`
	SenderEphemeralPublicKey string `json:"senderEphemeralPublicKey"`

	SenderEncryptedData             string `json:"senderEncryptedData"`
	SenderNonce                     string `json:"senderNonce"`
	SenderEphemeralPublicKeyForSelf string `json:"senderEphemeralPublicKeyForSelf"`
}

// EncryptDirect encrypts the plaintext for the recipient and, independently, for the sender.
func EncryptDirect(plaintext []byte, recipient, sender *PublicKey) (*DirectMessage, error) {
	// Encrypt a copy for the recipient with an ephemeral exchange against their public key.
	forRecipient, err := EncryptFor(recipient, plaintext)
	if err != nil {
		return nil, err
	}

	// Encrypt a second copy for the sender with a separate ephemeral exchange.
	forSender, err := EncryptFor(sender, plaintext)
	if err != nil {
		return nil, err
	}

	return &DirectMessage{
		EncryptedData:                   transcode.Encode(forRecipient.Ciphertext),
		Nonce:                           transcode.Encode(forRecipient.Nonce),
		SenderEphemeralPublicKey:        transcode.Encode(forRecipient.EphemeralPublicKey),
		SenderEncryptedData:             transcode.Encode(forSender.Ciphertext),
		SenderNonce:                     transcode.Encode(forSender.Nonce),
		SenderEphemeralPublicKeyForSelf: transcode.Encode(forSender.EphemeralPublicKey),
	}, nil
}

// DecryptDirect decrypts the recipient's copy of the message with the recipient's private key.
func DecryptDirect(msg *DirectMessage, recipient *PrivateKey) ([]byte, error) {
	return openText(recipient, msg.EncryptedData, msg.Nonce, msg.SenderEphemeralPublicKey)
}

// DecryptSent decrypts the sender's copy of the message with the sender's private key.
func DecryptSent(msg *DirectMessage, sender *PrivateKey) ([]byte, error) {
	return openText(sender, msg.SenderEncryptedData, msg.SenderNonce, msg.SenderEphemeralPublicKeyForSelf)
}
