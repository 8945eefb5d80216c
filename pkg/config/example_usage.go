package config

// Example usage of the configuration system:
//
// 1. Load configuration with all sources:
//
//     cfg, err := config.Load("", nil)
//     if err != nil {
//         log.Fatal(err)
//     }
//
// 2. Load with command line flags:
//
//     flags := map[string]interface{}{
//         "followers": []string{"export/followers_1.html", "export/followers_2.html"},
//         "following": "export/following.html",
//         "output":    "report.csv",
//         "parser":    "xpath",
//     }
//     cfg, err := config.Load("", flags)
//
// 3. Environment variables (also read from .env):
//
//     export IGUNFOLLOW_FOLLOWERS="data/followers_1.html,data/followers_2.html"
//     export IGUNFOLLOW_FOLLOWING="data/following.html"
//     export IGUNFOLLOW_IGNORE="ignore_list.txt"
//     export IGUNFOLLOW_OUTPUT="not_following_back.csv"
//     export IGUNFOLLOW_LOG_LEVEL="debug"
//
// 4. Save configuration to file:
//
//     if err := cfg.Save(".igunfollow.yaml"); err != nil {
//         log.Fatal(err)
//     }
