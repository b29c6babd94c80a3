// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tendersuite/tenderd/ent/chat"
	"github.com/tendersuite/tenderd/ent/chatmessage"
	"github.com/tendersuite/tenderd/ent/messagecounter"
	"github.com/tendersuite/tenderd/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatFields := schema.Chat{}.Fields()
	_ = chatFields
	// chatDescTitle is the schema descriptor for title field.
	chatDescTitle := chatFields[1].Descriptor()
	// chat.DefaultTitle holds the default value on creation for the title field.
	chat.DefaultTitle = chatDescTitle.Default.(string)
	// chatDescCreatedAt is the schema descriptor for created_at field.
	chatDescCreatedAt := chatFields[3].Descriptor()
	// chat.DefaultCreatedAt holds the default value on creation for the created_at field.
	chat.DefaultCreatedAt = chatDescCreatedAt.Default.(func() time.Time)
	// chatDescUpdatedAt is the schema descriptor for updated_at field.
	chatDescUpdatedAt := chatFields[4].Descriptor()
	// chat.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chat.DefaultUpdatedAt = chatDescUpdatedAt.Default.(func() time.Time)
	// chat.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chat.UpdateDefaultUpdatedAt = chatDescUpdatedAt.UpdateDefault.(func() time.Time)
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescContent is the schema descriptor for content field.
	chatmessageDescContent := chatmessageFields[3].Descriptor()
	// chatmessage.DefaultContent holds the default value on creation for the content field.
	chatmessage.DefaultContent = chatmessageDescContent.Default.(string)
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[8].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	// chatmessageDescUpdatedAt is the schema descriptor for updated_at field.
	chatmessageDescUpdatedAt := chatmessageFields[9].Descriptor()
	// chatmessage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatmessage.DefaultUpdatedAt = chatmessageDescUpdatedAt.Default.(func() time.Time)
	// chatmessage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatmessage.UpdateDefaultUpdatedAt = chatmessageDescUpdatedAt.UpdateDefault.(func() time.Time)
	messagecounterFields := schema.MessageCounter{}.Fields()
	_ = messagecounterFields
	// messagecounterDescNextSeq is the schema descriptor for next_seq field.
	messagecounterDescNextSeq := messagecounterFields[1].Descriptor()
	// messagecounter.DefaultNextSeq holds the default value on creation for the next_seq field.
	messagecounter.DefaultNextSeq = messagecounterDescNextSeq.Default.(int64)
}
