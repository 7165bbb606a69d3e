package cli

import (
	"fmt"

	"github.com/bochang/recipebox/internal/backup"
)

type BackupCmd struct {
	List    bool   `short:"l" help:"List existing backups instead of creating one."`
	Restore string `short:"r" help:"Restore the store from the given backup file."`
}

func (c *BackupCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.Path())

	if c.Restore != "" {
		if err := mgr.Restore(c.Restore); err != nil {
			return err
		}
		fmt.Printf("Restored store from: %s\n", c.Restore)
		return nil
	}

	if c.List {
		backups, err := mgr.ListBackups()
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			fmt.Println("No backups found")
			return nil
		}
		fmt.Println("Backups (newest first):")
		for _, b := range backups {
			fmt.Printf("  %s (%d bytes, %s)\n", b.Path, b.Size, b.Timestamp.Format("2006-01-02 15:04"))
		}
		return nil
	}

	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}
