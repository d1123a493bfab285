// @title           Scribo AI API
// @version         1.0
// @description     Generation backend for scripts, titles, captions, hashtags and content ideas.
// @description     Send a finished prompt with your Gemini API key; errors are returned as {"detail": "..."}.
// @BasePath        /
package api
