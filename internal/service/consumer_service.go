package service

import (
	"context"
	"encoding/json"

	"portfolio-chat-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the history topic and writes turns to the
// database. Persistence stays off the request path this way.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	historyService IHistoryService
	logger         *zap.Logger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	historyService IHistoryService,
	logger *zap.Logger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		historyService: historyService,
		logger:         logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishChatHistoryMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("failed to unmarshal history message", zap.Error(err))
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	err := cs.historyService.SaveChatMessage(ctx, &dto.SaveChatMessageRequest{
		UserId:      payload.UserId,
		SessionId:   payload.SessionId,
		Message:     payload.Message,
		Response:    payload.Response,
		MessageType: payload.MessageType,
	})
	if err != nil {
		cs.logger.Error("failed to save chat history",
			zap.String("session_id", payload.SessionId),
			zap.Error(err))
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
