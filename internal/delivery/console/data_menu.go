package console

import (
	"context"
	"fmt"
)

func (c *Console) saveData(ctx context.Context) error {
	if err := c.dataUsecase.SaveAll(ctx); err != nil {
		c.printf("Failed to save data: %v\n", err)
		return nil
	}
	c.println("Data saved.")
	return nil
}

func (c *Console) showAuditLog(ctx context.Context) error {
	logs := c.auditLogUsecase.GetAllAuditLogs(ctx)
	if logs.Total == 0 {
		c.println("Audit log is empty.")
		return nil
	}

	c.printf("Audit log (%d entries):\n", logs.Total)
	for _, entry := range logs.Logs {
		c.printf("%s | %s | %s %s\n",
			entry.CreatedAt.Format("2006-01-02 15:04:05"),
			entry.Action,
			metadataString(entry.Metadata["entity"]),
			metadataString(entry.Metadata["entity_id"]),
		)
	}
	return nil
}

func metadataString(value interface{}) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
